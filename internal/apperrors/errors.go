package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfiguration indicates that required configuration is missing or invalid.
var ErrConfiguration = errors.New("configuration error")

// ErrStoreUnavailable indicates that the backing store could not be reached or failed a query.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrTimeout indicates that an operation exceeded its bounded wait.
var ErrTimeout = errors.New("operation timed out")

// FieldError describes a single invalid field of an entry payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation. It unwraps to ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Details()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Details renders the field messages as one line, in field order.
func (e *ValidationError) Details() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// FieldNames returns the names of the offending fields.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}
