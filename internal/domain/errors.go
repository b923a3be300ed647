package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")
	// ErrDomain is matched by every *DomainError via errors.Is.
	ErrDomain = errors.New("domain error")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Op      string
	Field   string
	Message string
}

// NewValidationError creates a validation error for the given operation and field
func NewValidationError(op, field, message string) *ValidationError {
	return &ValidationError{Op: op, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DomainError reports a mathematically degenerate case (for example a zero
// rate on a path that would otherwise divide by zero).
type DomainError struct {
	Op      string
	Message string
}

// NewDomainError creates a domain error for the given operation
func NewDomainError(op, message string) *DomainError {
	return &DomainError{Op: op, Message: message}
}

func (e *DomainError) Error() string { return fmt.Sprintf("%s: %s", e.Op, e.Message) }

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
