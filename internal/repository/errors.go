package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrInvalidValue means a column rejected a value as too long or out of range.
var ErrInvalidValue = errors.New("value does not fit the column")

// SQLSTATE codes the repositories translate into sentinel errors.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgStringDataTruncation = "22001"
	pgNumericOutOfRange    = "22003"
)

func isUniqueViolation(err error) bool {
	return hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, pgForeignKeyViolation)
}

func isInvalidValue(err error) bool {
	return hasSQLState(err, pgStringDataTruncation) || hasSQLState(err, pgNumericOutOfRange)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
