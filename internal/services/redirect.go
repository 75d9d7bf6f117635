package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/cache"
	"github.com/fsdevblog/shortlinks/internal/metrics"
	"github.com/fsdevblog/shortlinks/internal/models"
)

// RedirectResult результат разрешения короткого кода.
type RedirectResult struct {
	Target string
	URLID  uint
}

type shortCodeFinder interface {
	GetByShortCode(ctx context.Context, code string) (*models.URL, error)
}

type clickRecorder interface {
	Record(ctx context.Context, sURL *models.URL, rc RequestContext) error
}

// RedirectService разрешает короткий код в исходный URL и записывает переход.
type RedirectService struct {
	urls     shortCodeFinder
	recorder clickRecorder
	cache    RedirectCache
	metrics  MetricsRecorder
	logger   *zap.Logger
}

// NewRedirectService создает сервис переадресации. redirectCache может быть nil.
func NewRedirectService(
	urls shortCodeFinder,
	recorder clickRecorder,
	redirectCache RedirectCache,
	m MetricsRecorder,
	logger *zap.Logger,
) *RedirectService {
	if m == nil {
		m = noopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedirectService{
		urls:     urls,
		recorder: recorder,
		cache:    redirectCache,
		metrics:  m,
		logger:   logger,
	}
}

// Resolve находит активную ссылку по коду и записывает переход.
//
// Неверный по форме код, отсутствующая или выключенная ссылка дают ErrRecordNotFound.
// Ошибка записи перехода логируется и учитывается в метриках, но переадресацию не отменяет.
func (r *RedirectService) Resolve(ctx context.Context, code string, rc RequestContext) (*RedirectResult, error) {
	if !IsValidShortCode(code) {
		r.metrics.Redirect(metrics.RedirectOutcomeNotFound)
		return nil, fmt.Errorf("%w: malformed short code", ErrRecordNotFound)
	}

	entry, err := r.lookup(ctx, code)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			r.metrics.Redirect(metrics.RedirectOutcomeNotFound)
		} else {
			r.metrics.Redirect(metrics.RedirectOutcomeError)
		}
		return nil, err
	}
	if !entry.IsActive {
		r.metrics.Redirect(metrics.RedirectOutcomeNotFound)
		return nil, fmt.Errorf("%w: short code %s is inactive", ErrRecordNotFound, code)
	}

	sURL := &models.URL{ID: entry.URLID, ShortCode: code, OriginalURL: entry.OriginalURL}
	if recErr := r.recorder.Record(ctx, sURL, rc); recErr != nil {
		r.metrics.ClickRecordFailed()
		r.logger.Error("failed to record click",
			zap.String("code", code),
			zap.Uint("url_id", entry.URLID),
			zap.Error(recErr),
		)
	}

	r.metrics.Redirect(metrics.RedirectOutcomeFound)
	return &RedirectResult{Target: entry.OriginalURL, URLID: entry.URLID}, nil
}

// lookup читает запись сначала из кэша, затем из хранилища. Сбои кэша не фатальны.
// В кэш попадает только запись, счетчик изменений которой не сдвинулся за время чтения хранилища.
func (r *RedirectService) lookup(ctx context.Context, code string) (*cache.Entry, error) {
	var (
		gen       int64
		cacheable bool
	)
	if r.cache != nil {
		entry, err := r.cache.Get(ctx, code)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("redirect cache read failed", zap.String("code", code), zap.Error(err))
		}
		gen, err = r.cache.Generation(ctx, code)
		if err != nil {
			r.logger.Warn("redirect cache generation read failed", zap.String("code", code), zap.Error(err))
		} else {
			cacheable = true
		}
	}

	sURL, err := r.urls.GetByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}
	entry := cache.Entry{URLID: sURL.ID, OriginalURL: sURL.OriginalURL, IsActive: sURL.IsActive}
	if cacheable {
		stored, setErr := r.cache.SetIfGeneration(ctx, code, entry, gen)
		switch {
		case setErr != nil:
			r.logger.Warn("redirect cache write failed", zap.String("code", code), zap.Error(setErr))
		case !stored:
			r.logger.Debug("stale redirect cache write skipped", zap.String("code", code))
		}
	}
	return &entry, nil
}
