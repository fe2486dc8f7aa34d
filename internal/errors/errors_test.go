package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("order not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "order not found", nfe.Message)
	assert.Equal(t, "order not found", nfe.Error())
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	nfe, ok := IsNotFoundError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestValidationError_Creation(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}

	err := NewValidationError("validation failed", details...)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 2)
	assert.Equal(t, "email", err.Details[0].Field)
}

func TestValidationError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("submitting: %w", NewValidationError("validation failed"))

	ve, ok := IsValidationError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "validation failed", ve.Message)
}

func TestConflictError_IsConflictError(t *testing.T) {
	var err error = NewConflictError("order already confirmed")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "order already confirmed", ce.Error())

	_, ok = IsValidationError(err)
	assert.False(t, ok)
}

func TestUnavailableError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailableError("order delivery failed", cause)

	assert.Contains(t, err.Error(), "order delivery failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))

	ue, ok := IsUnavailableError(fmt.Errorf("wrap: %w", err))
	assert.True(t, ok)
	assert.Equal(t, cause, ue.Cause)
}

func TestUnavailableError_NilCause(t *testing.T) {
	err := NewUnavailableError("sink offline", nil)

	assert.Equal(t, "sink offline", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to insert order", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to insert order")
	assert.Contains(t, err.Error(), "database error")
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestInternalError_IsInternalErrorThroughUnavailable(t *testing.T) {
	cause := errors.New("disk full")
	err := NewUnavailableError("order delivery failed", fmt.Errorf("recording: %w", NewInternalError("inserting order", cause)))

	ie, ok := IsInternalError(err)
	assert.True(t, ok)
	assert.Equal(t, "inserting order", ie.Message)
	assert.ErrorIs(t, err, cause)

	_, ok = IsInternalError(errors.New("plain"))
	assert.False(t, ok)
}
