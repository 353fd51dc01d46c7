package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Validator collects field-level validation errors.
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// Require records an error when value is empty after trimming.
func (v *Validator) Require(fieldName, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, ValidationError{Field: fieldName, Value: value, Message: "is required"})
	}
	return v
}

// MaxLength records an error when value exceeds max runes.
func (v *Validator) MaxLength(fieldName, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.errors = append(v.errors, ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: fmt.Sprintf("must be at most %d characters", max),
		})
	}
	return v
}

// IntRange records an error when value falls outside [min, max].
func (v *Validator) IntRange(fieldName string, value, min, max int) *Validator {
	if value < min || value > max {
		v.errors = append(v.errors, ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		})
	}
	return v
}

// OneOf records an error when value is not in allowed. Empty values pass;
// callers chain Require when the field is mandatory.
func (v *Validator) OneOf(fieldName, value string, allowed ...string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.errors = append(v.errors, ValidationError{
		Field:   fieldName,
		Value:   value,
		Message: "must be one of: " + strings.Join(allowed, ", "),
	})
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// ErrorMessage joins all collected errors into one message.
func (v *Validator) ErrorMessage() string {
	msgs := make([]string, 0, len(v.errors))
	for _, e := range v.errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Error returns a single wrapped ErrValidation, or nil when clean.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return NewAppError("VALIDATION_ERROR", v.ErrorMessage(), ErrValidation)
}
