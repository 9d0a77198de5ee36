package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request or entity fails validation.
	// It is usually wrapped by a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required text is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidContentType is returned when a content entry type is not recognized.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidLanguage is returned when a language code is malformed.
	ErrInvalidLanguage = errors.New("invalid language")
)

// ValidationError describes a single invalid field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError builds a ValidationError for field.
// A nil cause defaults to ErrValidation.
func NewValidationError(field, message string, cause error) *ValidationError {
	if cause == nil {
		cause = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: cause}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the cause so errors.Is sees it.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation, whatever its cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
