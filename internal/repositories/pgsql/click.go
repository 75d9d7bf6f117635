package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fsdevblog/shortlinks/internal/models"
)

type ClickRepo struct {
	conn *pgxpool.Pool
}

func NewClickRepo(conn *pgxpool.Pool) *ClickRepo {
	return &ClickRepo{conn: conn}
}

// Create в одной транзакции увеличивает счетчик ссылки и сохраняет событие перехода.
func (c *ClickRepo) Create(ctx context.Context, click *models.Click) error {
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now().UTC()
	}
	err := pgx.BeginFunc(ctx, c.conn, func(tx pgx.Tx) error {
		if err := incrementClicks(ctx, tx, click.URLID); err != nil {
			return err
		}
		const q = `INSERT INTO clicks (url_id, ip_address, user_agent, referer, clicked_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		return tx.QueryRow(ctx, q,
			click.URLID, click.IPAddress, click.UserAgent, click.Referer, click.ClickedAt,
		).Scan(&click.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create click: %w", convertErrType(err))
	}
	return nil
}

func (c *ClickRepo) GetLatestByURLID(ctx context.Context, urlID uint, limit int) ([]models.Click, error) {
	const q = `SELECT id, url_id, ip_address, user_agent, referer, clicked_at
		FROM clicks WHERE url_id = $1
		ORDER BY clicked_at DESC, id DESC
		LIMIT $2`

	rows, err := c.conn.Query(ctx, q, urlID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get clicks of url %d: %w", urlID, convertErrType(err))
	}
	clicks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Click, error) {
		var click models.Click
		scanErr := row.Scan(
			&click.ID, &click.URLID, &click.IPAddress, &click.UserAgent, &click.Referer, &click.ClickedAt,
		)
		return click, scanErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clicks of url %d: %w", urlID, convertErrType(err))
	}
	return clicks, nil
}

func (c *ClickRepo) CountByURLID(ctx context.Context, urlID uint) (uint64, error) {
	var count int64
	if err := c.conn.QueryRow(ctx, `SELECT COUNT(*) FROM clicks WHERE url_id = $1`, urlID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clicks of url %d: %w", urlID, convertErrType(err))
	}
	return uint64(count), nil //nolint:gosec
}
