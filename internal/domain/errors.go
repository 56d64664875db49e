package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel all user-input validation failures wrap.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a rejected form value. It is surfaced to the
// user inline; there is no retry path.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}
