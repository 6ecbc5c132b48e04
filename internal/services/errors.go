package services

import (
	"fmt"

	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
)

// Domain errors. Each wraps an application error class so callers can
// classify with errors.Is on either the domain or the class sentinel.
var (
	ErrInvalidDomain      = fmt.Errorf("invalid email domain: %w", apperrors.ErrInvalidInput)
	ErrUserExists         = fmt.Errorf("user already exists: %w", apperrors.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)

	ErrStudentNotFound    = fmt.Errorf("student %w", apperrors.ErrNotFound)
	ErrTeacherNotFound    = fmt.Errorf("teacher %w", apperrors.ErrNotFound)
	ErrRequestNotFound    = fmt.Errorf("connect request %w", apperrors.ErrNotFound)
	ErrRequestAlreadySent = fmt.Errorf("connect request already sent: %w", apperrors.ErrConflict)

	ErrBookNotFound     = fmt.Errorf("book %w", apperrors.ErrNotFound)
	ErrBookNotAvailable = fmt.Errorf("book not available: %w", apperrors.ErrConflict)

	ErrTableMissing = fmt.Errorf("association members table does not exist: %w", apperrors.ErrNotConfigured)
)
