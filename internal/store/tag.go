package store

import "context"

// TagRegistry defines the interface for the registry of known tag names.
// The registry only grows; tags are never removed, even when no contact
// carries them anymore.
type TagRegistry interface {
	// List returns every registered tag, sorted case-insensitively.
	List(ctx context.Context) ([]string, error)

	// Create registers a tag name after trimming surrounding whitespace.
	// Registration is idempotent: if a tag already exists under a
	// case-insensitive comparison, the registry is left unchanged and
	// created is false. The returned slice is always the full registry.
	// Returns ErrInvalidEntity wrapping the domain error for blank names.
	Create(ctx context.Context, name string) (tags []string, created bool, err error)
}
