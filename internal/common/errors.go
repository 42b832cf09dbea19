package common

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError is a client input failure (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError signals a missing or not-owned resource (404). Rows
// belonging to another tenant are reported as not found, never leaked.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// DuplicateError signals a violated scoped-uniqueness rule (400).
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string { return e.Msg }

// DependencyError blocks a delete that would orphan child rows (400).
type DependencyError struct {
	Resource  string
	Dependent string
	Count     int
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot delete %s: %d dependent %s exist", e.Resource, e.Count, e.Dependent)
}

const pgUniqueViolation = "23505"

// TranslateDBError maps data-layer errors onto the service taxonomy.
// Unique-constraint violations become DuplicateError: the database
// constraint is the authoritative duplicate guard, the application-level
// existence check is only a pre-flight courtesy.
func TranslateDBError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &NotFoundError{Resource: resource}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &DuplicateError{Msg: fmt.Sprintf("%s violates a uniqueness constraint", resource)}
	}
	return err
}
