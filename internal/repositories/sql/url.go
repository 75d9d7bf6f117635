package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const newestFirst = "created_at DESC, id DESC"

type URLRepo struct {
	db *gorm.DB
}

func NewURLRepo(db *gorm.DB) *URLRepo {
	return &URLRepo{db: db}
}

func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	if err := u.db.WithContext(ctx).Omit("Clicks").Create(sURL).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	return nil
}

func (u *URLRepo) GetByShortCode(ctx context.Context, code string) (*models.URL, error) {
	var url models.URL
	if err := u.db.WithContext(ctx).Where("short_code = ?", code).First(&url).Error; err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}
	return &url, nil
}

func (u *URLRepo) GetByID(ctx context.Context, id uint) (*models.URL, error) {
	var url models.URL
	if err := u.db.WithContext(ctx).First(&url, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrorType(err))
	}
	return &url, nil
}

// SearchByOriginalURL ищет ссылки по подстроке исходного URL без учета регистра.
// Подстрока передается только параметром, спецсимволы LIKE экранируются.
func (u *URLRepo) SearchByOriginalURL(ctx context.Context, substr string) ([]models.URL, error) {
	var urls []models.URL
	err := u.db.WithContext(ctx).
		Where("LOWER(original_url) LIKE ? ESCAPE ?", repositories.ContainsPattern(substr), repositories.LikeEscapeChar).
		Order(newestFirst).
		Find(&urls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", convertErrorType(err))
	}
	return urls, nil
}

func (u *URLRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]models.URL, error) {
	var urls []models.URL
	err := u.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(newestFirst).
		Find(&urls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get records by owner %s: %w", ownerID, convertErrorType(err))
	}
	return urls, nil
}

// IncrementClicks увеличивает счетчик одним UPDATE выражением, без чтения значения.
func (u *URLRepo) IncrementClicks(ctx context.Context, id uint) error {
	return incrementClicks(u.db.WithContext(ctx), id)
}

func (u *URLRepo) SetActive(ctx context.Context, id uint, active bool) (*models.URL, error) {
	var url models.URL
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.URL{}).Where("id = ?", id).UpdateColumn("is_active", active)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&url, id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update record %d: %w", id, convertErrorType(err))
	}
	return &url, nil
}

// Delete удаляет ссылку и ее переходы в одной транзакции.
func (u *URLRepo) Delete(ctx context.Context, id uint) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("url_id = ?", id).Delete(&models.Click{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.URL{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, convertErrorType(err))
	}
	return nil
}

func incrementClicks(tx *gorm.DB, id uint) error {
	res := tx.Model(&models.URL{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, convertErrorType(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}
