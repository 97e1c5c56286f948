package naming

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrMissingField is the sentinel for an empty required identity field.
	// It is deliberately distinct from registry.ErrUnknownKey: an empty field
	// is a caller defect, not a failed lookup.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidToken is the sentinel for name components that violate the
	// lowercase alphanumeric-and-hyphen charset.
	ErrInvalidToken = errors.New("invalid name token")

	// ErrNameTooLong is returned when a generated name exceeds the
	// provider's length limit for that resource kind.
	ErrNameTooLong = errors.New("generated name exceeds length limit")
)

// Validation layers, checked in this fixed order.
const (
	LayerEnvironment = "environment"
	LayerApplication = "application"
	LayerRegion      = "region"
)

// MissingFieldError identifies an empty required identity field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// ValidationError wraps the first failing layer of an identity validation.
// The layer order is fixed (environment, application, region) so error
// messages are reproducible across callers.
type ValidationError struct {
	Layer string
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Layer, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
