package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNotFound_Error(t *testing.T) {
	err := &ErrNotFound{Entity: "coach", ID: "12345"}
	assert.Equal(t, "coach not found with ID: 12345", err.Error())

	err = &ErrNotFound{Entity: "schedule-call form", ID: "u1", Message: "No pending schedule-call form found for this user"}
	assert.Equal(t, "No pending schedule-call form found for this user", err.Error())
}

func TestErrConflict_Error(t *testing.T) {
	err := &ErrConflict{Entity: "coach", Message: "email already exists"}
	assert.Equal(t, "coach conflict: email already exists", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("User ID is required")
	assert.Equal(t, "validation error: User ID is required", err.Error())

	var ve ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ve))
	assert.Equal(t, "User ID is required", ve.Message)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&ErrNotFound{Entity: "coach", ID: "1"}))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", &ErrNotFound{Entity: "coach", ID: "1"})))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}
