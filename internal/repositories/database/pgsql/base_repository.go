package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// execAffectingOne runs a statement that must touch exactly one row.
// Zero affected rows are reported as apperrors.ErrNotFound.
func (r *BaseRepository) execAffectingOne(ctx context.Context, what, query string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("failed to %s: %w", what, apperrors.ErrNotFound)
	}
	return nil
}

// wrapQueryError maps pgx.ErrNoRows to apperrors.ErrNotFound and unique
// violations to apperrors.ErrDuplicate.
func wrapQueryError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to %s: %w", what, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
