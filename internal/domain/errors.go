package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist.
// Message, when set, replaces the generated text.
type ErrNotFound struct {
	Entity  string
	ID      string
	Message string
}

func (e *ErrNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ErrConflict is returned when a write collides with a unique constraint
type ErrConflict struct {
	Entity  string
	Message string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// IsNotFound reports whether err wraps an *ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}
