package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity id is absent on update or delete.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryInUse is returned when deleting a category that still has
	// referencing media items.
	ErrCategoryInUse = errors.New("category has referencing media items")
)

// ValidationError carries the field-level reason for a rejected write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// TransportError wraps a lower-level backend failure (network error,
// malformed response) so callers can distinguish it from a missing row.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: backend failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps err as a TransportError for operation op.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
