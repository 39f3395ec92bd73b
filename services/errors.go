// Package services holds the gym business logic. Handlers call services,
// services call repositories.
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by services. Callers match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFound maps sql.ErrNoRows to ErrNotFound for the named entity and passes other errors through.
func notFound(err error, entity string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %v", ErrNotFound, entity, id)
	}
	return err
}

// isUniqueViolation matches duplicate-key errors from PostgreSQL, MySQL and SQLite.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint failed")
}
