package registry

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrUnknownKey is the sentinel for lookups of unregistered keys.
	ErrUnknownKey = errors.New("unknown key")

	// ErrDuplicateKey is the sentinel for re-registration of an existing key.
	ErrDuplicateKey = errors.New("key already registered")

	// ErrFrozen is returned when registration is attempted after Freeze.
	ErrFrozen = errors.New("registry is frozen")

	// ErrInvalidDescriptor is the sentinel for descriptors that fail the
	// registry's structural checks (empty key, empty or non-lowercase prefix).
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// UnknownKeyError identifies a lookup of a key that was never registered.
type UnknownKeyError struct {
	Registry string // e.g. "environment", "application", "region"
	Key      string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s key %q", e.Registry, e.Key)
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// DuplicateKeyError identifies an attempt to register a key twice.
type DuplicateKeyError struct {
	Registry string
	Key      string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s key %q already registered", e.Registry, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
