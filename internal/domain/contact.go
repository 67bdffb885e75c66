package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Validation errors for contacts.
var (
	// ErrContactIDEmpty is returned when a contact has no ID.
	ErrContactIDEmpty = errors.New("contact ID cannot be empty")

	// ErrContactNameRequired is returned when a contact name is missing or blank.
	ErrContactNameRequired = errors.New("contact name is required")

	// ErrContactPhoneRequired is returned when a contact phone is missing or blank.
	ErrContactPhoneRequired = errors.New("contact phone is required")

	// ErrContactTagsNil is returned when the tags slice is nil rather than empty.
	ErrContactTagsNil = errors.New("contact tags cannot be nil")
)

// Contact represents a single entry in the address book. Name and Phone are
// mandatory; Email and ImageURL are kept only when they passed sanitization
// at the request boundary. Tags is always a non-nil slice so it serializes
// as a JSON array, never as null.
type Contact struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	IsFavorite bool     `json:"isFavorite"`
	Tags       []string `json:"tags"`
}

// NewContact creates a new Contact with a generated ID. New contacts always
// start with IsFavorite set to false. The tags slice is copied, so the caller
// retains ownership of its argument.
func NewContact(name, phone, email, imageURL string, tags []string) (*Contact, error) {
	contact := &Contact{
		ID:         uuid.NewString(),
		Name:       name,
		Phone:      phone,
		Email:      email,
		ImageURL:   imageURL,
		IsFavorite: false,
		Tags:       copyTags(tags),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks that the contact data meets domain requirements.
// Name and Phone must be non-blank after trimming; leading and trailing
// whitespace in the stored values is otherwise preserved.
func (c *Contact) Validate() error {
	if c.ID == "" {
		return ErrContactIDEmpty
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrContactNameRequired
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrContactPhoneRequired
	}
	if c.Tags == nil {
		return ErrContactTagsNil
	}
	return nil
}

// Clone returns a deep copy of the contact. The tags slice is copied, so
// mutating the clone never affects the original.
func (c *Contact) Clone() *Contact {
	clone := *c
	clone.Tags = copyTags(c.Tags)
	return &clone
}

func copyTags(tags []string) []string {
	copied := make([]string, len(tags))
	copy(copied, tags)
	return copied
}
