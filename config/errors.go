package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a configuration value is not
	// usable for building a scanner table.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotifierClosed indicates a publish was attempted on a
	// closed notifier.
	ErrNotifierClosed = errors.New("notifier is closed")
)

// ValidationError describes a validation failure for one field.
type ValidationError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
