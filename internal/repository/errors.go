package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict reports that a write collided with existing state: a
	// compare-and-swap update lost to a concurrent writer, or an insert
	// hit a uniqueness constraint.
	ErrConflict = errors.New("conflicting update")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
