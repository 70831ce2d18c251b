package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors as sentinel values
var (
	// Brand errors
	ErrBrandNotFound = errors.New("brand not found")
	ErrBrandExists   = errors.New("brand already exists")
	ErrBrandInUse    = errors.New("brand is referenced by existing programs")

	// Program errors
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramExists   = errors.New("program already exists")

	// Record errors
	ErrMissingID = errors.New("record id is required")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field-level failure of a candidate record.
// It is returned from Validate and never wraps a store failure.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the first message recorded for field, if any.
func (ve ValidationErrors) Field(field string) (string, bool) {
	for _, fe := range ve {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// add appends a failure; callers return ve.orNil() at the end.
func (ve *ValidationErrors) add(field, message string) {
	*ve = append(*ve, FieldError{Field: field, Message: message})
}

func (ve ValidationErrors) orNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
