package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// DefaultClickRecordTimeout ограничение на запись одного перехода.
const DefaultClickRecordTimeout = 2 * time.Second

// DetailClicksLimit сколько последних переходов показывается в деталях ссылки.
const DetailClicksLimit = 10

const (
	maxUserAgentLength = 1024
	maxRefererLength   = models.MaxOriginalURLLength
)

// ClickRecorder записывает события перехода по ссылкам.
type ClickRecorder struct {
	clickRepo ClickRepository
	timeout   time.Duration
}

func NewClickRecorder(clickRepo ClickRepository, timeout time.Duration) *ClickRecorder {
	if timeout <= 0 {
		timeout = DefaultClickRecordTimeout
	}
	return &ClickRecorder{clickRepo: clickRepo, timeout: timeout}
}

// Record сохраняет переход по ссылке sURL. Хранилище в той же транзакции увеличивает счетчик ссылки.
func (r *ClickRecorder) Record(ctx context.Context, sURL *models.URL, rc RequestContext) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	click := models.Click{
		URLID:     sURL.ID,
		IPAddress: rc.ClientIP(),
		UserAgent: sanitizeHeader(rc.UserAgent, maxUserAgentLength),
		ClickedAt: time.Now().UTC(),
	}
	if rc.Referer != "" {
		referer := sanitizeHeader(rc.Referer, maxRefererLength)
		click.Referer = &referer
	}

	if err := r.clickRepo.Create(ctx, &click); err != nil {
		return fmt.Errorf("record click of url %d: %w", sURL.ID, convertRepoError(err))
	}
	return nil
}

// Latest возвращает не более limit последних переходов по ссылке.
func (r *ClickRecorder) Latest(ctx context.Context, urlID uint, limit int) ([]models.Click, error) {
	clicks, err := r.clickRepo.GetLatestByURLID(ctx, urlID, limit)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return clicks, nil
}

// sanitizeHeader приводит значение заголовка к виду, который примет любое хранилище:
// невалидный UTF-8 заменяется на U+FFFD, NUL удаляется, длина обрезается до n байт по границе символа.
func sanitizeHeader(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.ReplaceAll(s, "\x00", "")
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
