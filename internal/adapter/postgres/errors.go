package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// sqlStateErrors maps the SQLSTATE codes the repositories can trigger to
// domain sentinels. Anything else is wrapped unchanged.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23001": domain.ErrConflict,      // restrict_violation, raised by the append-only audit trigger
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrLockTimeout,   // lock_not_available
}

// MapError prefixes err with the entity and key and translates pgx errors to
// domain sentinels. Context cancellation is never translated.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	cause := err
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.Is(err, pgx.ErrNoRows):
		cause = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := sqlStateErrors[pgErr.Code]; ok {
				cause = mapped
			}
		}
	}
	return fmt.Errorf("%s %v: %w", entity, key, cause)
}
