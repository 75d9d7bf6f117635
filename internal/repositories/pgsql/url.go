package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const urlColumns = "id, original_url, short_code, owner_id, created_at, click_count, is_active, notes"

type URLRepo struct {
	conn *pgxpool.Pool
}

func NewURLRepo(conn *pgxpool.Pool) *URLRepo {
	return &URLRepo{conn: conn}
}

func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	const q = `INSERT INTO urls (original_url, short_code, owner_id, click_count, is_active, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	row := u.conn.QueryRow(ctx, q,
		sURL.OriginalURL, sURL.ShortCode, sURL.OwnerID, sURL.ClickCount, sURL.IsActive, sURL.Notes,
	)
	if err := row.Scan(&sURL.ID, &sURL.CreatedAt); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrType(err))
	}
	return nil
}

func (u *URLRepo) GetByShortCode(ctx context.Context, code string) (*models.URL, error) {
	const q = `SELECT ` + urlColumns + ` FROM urls WHERE short_code = $1`

	url, err := scanURL(u.conn.QueryRow(ctx, q, code))
	if err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrType(err))
	}
	return url, nil
}

func (u *URLRepo) GetByID(ctx context.Context, id uint) (*models.URL, error) {
	const q = `SELECT ` + urlColumns + ` FROM urls WHERE id = $1`

	url, err := scanURL(u.conn.QueryRow(ctx, q, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrType(err))
	}
	return url, nil
}

// SearchByOriginalURL ищет ссылки по подстроке исходного URL без учета регистра.
func (u *URLRepo) SearchByOriginalURL(ctx context.Context, substr string) ([]models.URL, error) {
	const q = `SELECT ` + urlColumns + ` FROM urls
		WHERE LOWER(original_url) LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC`

	urls, err := u.queryURLs(ctx, q, repositories.ContainsPattern(substr))
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	return urls, nil
}

func (u *URLRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]models.URL, error) {
	const q = `SELECT ` + urlColumns + ` FROM urls WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	urls, err := u.queryURLs(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get records by owner %s: %w", ownerID, err)
	}
	return urls, nil
}

func (u *URLRepo) IncrementClicks(ctx context.Context, id uint) error {
	return incrementClicks(ctx, u.conn, id)
}

func (u *URLRepo) SetActive(ctx context.Context, id uint, active bool) (*models.URL, error) {
	const q = `UPDATE urls SET is_active = $2 WHERE id = $1 RETURNING ` + urlColumns

	url, err := scanURL(u.conn.QueryRow(ctx, q, id, active))
	if err != nil {
		return nil, fmt.Errorf("failed to update record %d: %w", id, convertErrType(err))
	}
	return url, nil
}

// Delete удаляет ссылку. Переходы удаляются каскадно внешним ключом.
func (u *URLRepo) Delete(ctx context.Context, id uint) error {
	tag, err := u.conn.Exec(ctx, `DELETE FROM urls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, convertErrType(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete record %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (u *URLRepo) queryURLs(ctx context.Context, q string, args ...any) ([]models.URL, error) {
	rows, err := u.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, convertErrType(err)
	}
	urls, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.URL, error) {
		url, scanErr := scanURL(row)
		if scanErr != nil {
			return models.URL{}, scanErr
		}
		return *url, nil
	})
	if err != nil {
		return nil, convertErrType(err)
	}
	return urls, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func incrementClicks(ctx context.Context, conn execer, id uint) error {
	tag, err := conn.Exec(ctx, `UPDATE urls SET click_count = click_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, convertErrType(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func scanURL(row pgx.Row) (*models.URL, error) {
	var url models.URL
	err := row.Scan(
		&url.ID,
		&url.OriginalURL,
		&url.ShortCode,
		&url.OwnerID,
		&url.CreatedAt,
		&url.ClickCount,
		&url.IsActive,
		&url.Notes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &url, nil
}
