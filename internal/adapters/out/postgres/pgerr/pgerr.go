// Package pgerr classifies Postgres driver errors regardless of which driver
// produced them: pgx (used by GORM) or lib/pq (used by database/sql callers).
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// UniqueViolation is the SQLSTATE of a unique constraint violation.
const UniqueViolation = "23505"

// Code returns the SQLSTATE carried by err, or "" for non-Postgres errors.
func Code(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}

// IsUniqueViolation reports whether err is a unique violation. When
// constraintName is not empty the violated constraint must match it.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil || Code(err) != UniqueViolation {
		return false
	}
	return constraintName == "" || Constraint(err) == constraintName
}
