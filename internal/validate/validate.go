package validate

import (
	"fmt"
	"math"
)

// ValidationError represents a failed input precondition
type ValidationError struct {
	Field  string  // Name of the offending quantity, empty for whole-input checks
	Value  float64 // Offending value
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}

// Errorf builds a ValidationError that is not tied to a single field
func Errorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Finite rejects NaN and ±Inf
func Finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: v, Reason: "must be finite"}
	}
	return nil
}

// Positive requires a finite value > 0
func Positive(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ValidationError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

// NonNegative requires a finite value >= 0
func NonNegative(field string, v float64) error {
	if err := Finite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return &ValidationError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// First returns the first non-nil error, so callers can list checks in order
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
