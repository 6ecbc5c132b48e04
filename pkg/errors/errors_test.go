package errors_test

import (
	stderrors "errors"
	"testing"

	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := apperrors.NotFoundError("book")
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "book not found", err.Error())
}

func TestConflictError(t *testing.T) {
	err := apperrors.ConflictError("request already sent")
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.False(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestInternalError_KeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.InternalError("query users", cause)

	assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
	assert.True(t, apperrors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := apperrors.InternalError("query users", nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
}
