package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to domain categories.
// 55P03 is raised when lock_timeout expires while another reviewer holds a
// change row; 40P01 when two transactions lock list rows in opposite order.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"55P03": domain.ErrConflict,      // lock_not_available
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
