package store

import (
	"context"

	"github.com/jalvarado/contacts-api/internal/domain"
)

// ListContactsParams carries the filter and pagination arguments for
// ContactStore.List. The zero value of Page and Limit is not meaningful;
// callers are expected to apply their own defaults before calling.
type ListContactsParams struct {
	// Page is the 1-based page number. Pages beyond the end of the result
	// set yield an empty page, not an error.
	Page int

	// Limit is the maximum number of contacts per page.
	Limit int

	// Search restricts the listing to contacts matching the term by name,
	// phone digits, or email. Blank means no search filter.
	Search string

	// Tag restricts the listing by tag. The empty string and "All" disable
	// the filter, "Favourite" selects favorites, and any other value selects
	// contacts carrying exactly that tag.
	Tag string
}

// ContactPage is one page of a filtered contact listing.
type ContactPage struct {
	// Contacts holds the page window, in collection order.
	Contacts []*domain.Contact

	// TotalCount is the number of contacts matching the filters across all
	// pages, not just the returned window.
	TotalCount int

	// Page echoes the requested page number.
	Page int

	// HasNextPage reports whether another page of matches exists.
	HasNextPage bool
}

// CreateContactParams holds the sanitized fields for a new contact.
// Email, ImageURL, and Tags must already have passed boundary sanitization;
// the store applies domain validation only.
type CreateContactParams struct {
	Name     string
	Phone    string
	Email    string
	ImageURL string
	Tags     []string
}

// UpdateContactParams describes a partial update of a contact.
// A nil field means "leave unchanged"; a non-nil Tags pointing at an empty
// slice clears the contact's tags.
type UpdateContactParams struct {
	IsFavorite *bool
	Tags       *[]string
}

// ContactStore defines the interface for contact persistence.
type ContactStore interface {
	// List returns the page of contacts selected by params, applying the
	// search filter, the tag filter, and pagination in that order.
	// TotalCount counts matches before pagination.
	List(ctx context.Context, params ListContactsParams) (*ContactPage, error)

	// Create validates and stores a new contact, assigning it a fresh ID,
	// and returns the stored contact. The collection stays ordered by name.
	// Returns ErrInvalidEntity wrapping the domain error when validation fails.
	Create(ctx context.Context, params CreateContactParams) (*domain.Contact, error)

	// Update applies a partial update and returns the updated contact.
	// When the update touches tags the collection is re-sorted by name.
	// Returns ErrContactNotFound if the contact does not exist.
	Update(ctx context.Context, id string, params UpdateContactParams) (*domain.Contact, error)

	// Delete removes a contact and returns its last stored state.
	// The order of the remaining contacts is preserved.
	// Returns ErrContactNotFound if the contact does not exist.
	Delete(ctx context.Context, id string) (*domain.Contact, error)
}
