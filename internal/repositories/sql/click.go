package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
)

type ClickRepo struct {
	db *gorm.DB
}

func NewClickRepo(db *gorm.DB) *ClickRepo {
	return &ClickRepo{db: db}
}

// Create в одной транзакции увеличивает счетчик ссылки и сохраняет событие перехода.
// Если ссылки нет, возвращается repositories.ErrNotFound и ничего не записывается.
func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := incrementClicks(tx, click.URLID); err != nil {
			return err
		}
		return tx.Create(click).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrorType(err))
	}
	return nil
}

func (c *ClickRepo) GetLatestByURLID(ctx context.Context, urlID uint, limit int) ([]models.Click, error) {
	var clicks []models.Click
	err := c.db.WithContext(ctx).
		Where("url_id = ?", urlID).
		Order("clicked_at DESC, id DESC").
		Limit(limit).
		Find(&clicks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks of url %d: %w", urlID, convertErrorType(err))
	}
	return clicks, nil
}

func (c *ClickRepo) CountByURLID(ctx context.Context, urlID uint) (uint64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&models.Click{}).Where("url_id = ?", urlID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clicks of url %d: %w", urlID, convertErrorType(err))
	}
	return uint64(count), nil //nolint:gosec
}
