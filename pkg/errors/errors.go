package errors

import (
	"errors"
	"fmt"
)

// Application error taxonomy. Services wrap these so handlers can classify
// failures with errors.Is without knowing every domain sentinel.

var (
	// ErrNotFound indicates a referenced entity is absent
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates missing or malformed input
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates credentials did not match
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates a business rule rejected the operation
	// (duplicate record, exhausted counter)
	ErrConflict = errors.New("conflict")

	// ErrNotConfigured indicates a backing resource (table) is missing
	ErrNotConfigured = errors.New("not configured")

	// ErrInternal indicates an infrastructure failure
	ErrInternal = errors.New("internal error")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// ConflictError creates a conflict error with context
func ConflictError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// InternalError wraps an infrastructure failure, keeping the cause for logs
func InternalError(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", msg, ErrInternal)
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrInternal, cause)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
