package memstore

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
)

// ClickRepo репозиторий событий перехода в памяти.
type ClickRepo struct {
	s *db.MemoryStorage
}

func NewClickRepo(store *db.MemoryStorage) *ClickRepo {
	return &ClickRepo{s: store}
}

// Create сохраняет переход и увеличивает счетчик родительской ссылки. Обе записи
// меняются под одной блокировкой хранилища, поэтому счетчик всегда равен числу событий.
// Если ссылки нет, возвращается repositories.ErrNotFound.
func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	c.s.Lock()
	defer c.s.Unlock()

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	if err := incrementClicks(ctx, c.s, click.URLID); err != nil {
		return err
	}

	record := *click
	record.ID = c.s.NextClickID()
	if record.ClickedAt.IsZero() {
		record.ClickedAt = time.Now().UTC()
	}
	// счетчик уже увеличен, событие обязано попасть в хранилище
	if err := memory.Set[models.Click](
		context.WithoutCancel(ctx), clickKey(record.ID), &record, c.s.Clicks,
	); err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}

	click.ID = record.ID
	click.ClickedAt = record.ClickedAt
	return nil
}

// GetLatestByURLID возвращает не более limit последних переходов по ссылке, новые первыми.
func (c *ClickRepo) GetLatestByURLID(ctx context.Context, urlID uint, limit int) ([]models.Click, error) {
	c.s.RLock()
	defer c.s.RUnlock()

	data, err := memory.FilterAll[models.Click](ctx, c.s.Clicks, func(val models.Click) bool {
		return val.URLID == urlID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks of url %d: %w", urlID, convertErrorType(err))
	}
	slices.SortFunc(data, func(a, b models.Click) int {
		if cmp := b.ClickedAt.Compare(a.ClickedAt); cmp != 0 {
			return cmp
		}
		return int(b.ID) - int(a.ID) //nolint:gosec
	})
	if limit >= 0 && len(data) > limit {
		data = data[:limit]
	}
	return data, nil
}

// CountByURLID считает переходы по ссылке.
func (c *ClickRepo) CountByURLID(ctx context.Context, urlID uint) (uint64, error) {
	c.s.RLock()
	defer c.s.RUnlock()

	data, err := memory.FilterAll[models.Click](ctx, c.s.Clicks, func(val models.Click) bool {
		return val.URLID == urlID
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks of url %d: %w", urlID, convertErrorType(err))
	}
	return uint64(len(data)), nil
}

func clickKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
