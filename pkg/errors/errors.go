package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Conflict sentinels raised inside reservation transactions. They cross the
// repository/service boundary, so they live here rather than in either package.
var (
	// ErrZoneTaken is returned when a zone is already owned by a different JE.
	ErrZoneTaken = errors.New("zone already reserved by another JE")

	// ErrPlaceTaken is returned when the requested place name is already held
	// by another participant of the same JE.
	ErrPlaceTaken = errors.New("place already taken")

	// ErrActivityFull is returned when an activity has no remaining capacity.
	ErrActivityFull = errors.New("activity is at capacity")
)

// pgUniqueViolation is SQLSTATE 23505 (duplicate key).
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres duplicate-key error.
// The reservation unique indexes fire one when two transactions race past
// the row locks; callers translate it to the matching Conflict sentinel.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
