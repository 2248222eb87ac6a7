package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStore      = errors.New("store error")
	ErrLoad       = errors.New("load error")
	ErrConflict   = errors.New("conflict")
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

// FailedRecord is one rejected entry of a batched store write.
type FailedRecord struct {
	Index   int
	Message string
}

// StoreError reports that the record store rejected an operation or could not
// be reached. Message carries the store's own text.
type StoreError struct {
	Op         string
	Collection string
	Message    string
	Failed     []FailedRecord
}

func (e *StoreError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "store: %s %s", e.Op, e.Collection)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if len(e.Failed) > 0 {
		fmt.Fprintf(&b, " (%d failed records)", len(e.Failed))
	}
	return b.String()
}

func (e *StoreError) Unwrap() error { return ErrStore }

// LoadError wraps a failed fetch of a collection the caller can retry.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load: %v", e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Err} }
