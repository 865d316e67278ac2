package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict is returned when an insert violates a unique constraint
// (duplicate username or course title).
var ErrConflict = errors.New("row already exists")

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
