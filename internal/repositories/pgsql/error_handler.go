package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const uniqueViolationCode = "23505"

func convertErrType(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	var nativeErr error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrDuplicateKey):
		return err
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, pgx.ErrNoRows):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %s", nativeErr, err.Error())
}
