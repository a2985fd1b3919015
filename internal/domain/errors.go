package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	ErrInvalidQuality  = errors.New("invalid quality")
	ErrCardNotFound    = fmt.Errorf("card %w", ErrNotFound)
	ErrPersistence     = errors.New("persistence failure")
	ErrStateCorruption = errors.New("memory state corrupted")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvalidQualityError reports a recall grade outside 0..5.
// It matches both ErrInvalidQuality and ErrValidation.
type InvalidQualityError struct {
	Quality int
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid quality %d: must be between %d and %d", e.Quality, QualityMin, QualityMax)
}

func (e *InvalidQualityError) Unwrap() []error { return []error{ErrInvalidQuality, ErrValidation} }

// StateCorruptionError reports a stored memory state that violates its invariants.
type StateCorruptionError struct {
	CardID uuid.UUID
	Reason string
}

func (e *StateCorruptionError) Error() string {
	return fmt.Sprintf("card %s: memory state corrupted: %s", e.CardID, e.Reason)
}

func (e *StateCorruptionError) Unwrap() error { return ErrStateCorruption }

// PersistenceError wraps a storage failure. The underlying cause stays reachable
// through errors.Is / errors.As.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }
