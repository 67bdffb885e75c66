package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrContactNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrContactNotFound indicates that the requested contact does not exist
	// in the store.
	ErrContactNotFound = fmt.Errorf("%w: contact", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error stems from entity validation,
// whether it carries the generic ErrInvalidEntity or a wrapped domain
// validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEntity)
}
