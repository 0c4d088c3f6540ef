// Package pgerr translates PostgreSQL driver errors into the application's error taxonomy.
package pgerr

import (
	"errors"

	"catering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Translate turns a unique violation into errs.ConflictError naming paramName and
// value. Any other error is returned unchanged.
func Translate(err error, paramName string, value any) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause(paramName, value, err)
	}
	return err
}
