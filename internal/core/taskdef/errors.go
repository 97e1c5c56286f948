package taskdef

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrEmptyInput is returned when the raw configuration document is empty.
	ErrEmptyInput = errors.New("task configuration is empty")

	// ErrInvalidJSON is returned when the document is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON syntax")

	// ErrNoServices is returned when the shape defines no services.
	ErrNoServices = errors.New("at least one Service configuration is required")

	// ErrDuplicateName is the sentinel for duplicate service or container names.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrEmptyName is the sentinel for missing required names.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrPortOutOfRange is the sentinel for container ports outside (0, 65535].
	ErrPortOutOfRange = errors.New("container port out of range")

	// ErrBadProtocol is the sentinel for protocols other than tcp and udp.
	ErrBadProtocol = errors.New("protocol must be tcp or udp")
)

// ShapeError wraps a structural defect with the path of the offending field,
// e.g. "services[1].taskDefinitions[0].containerDefinitions[2].portMappings[0]".
type ShapeError struct {
	Field   string
	Message string
	Err     error
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// NewShapeError creates a new ShapeError.
func NewShapeError(field, message string, err error) *ShapeError {
	return &ShapeError{Field: field, Message: message, Err: err}
}
