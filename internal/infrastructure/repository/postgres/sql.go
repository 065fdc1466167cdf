package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// pqUniqueViolation is the postgres error code for a unique constraint hit.
const pqUniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
