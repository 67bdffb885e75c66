package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jalvarado/contacts-api/internal/domain"
	"github.com/jalvarado/contacts-api/internal/store"
)

// MemoryContactStore implements the store.ContactStore interface with a
// process-local slice guarded by a mutex. The slice is kept sorted by contact
// name under a locale-aware collation, so reads never sort.
type MemoryContactStore struct {
	mu       sync.Mutex
	collator *collate.Collator
	contacts []*domain.Contact
	logger   *slog.Logger
}

// NewMemoryContactStore creates an in-memory ContactStore pre-populated with
// the given contacts. The seed contacts are copied, so the caller retains
// ownership of its slice. If logger is nil, a default logger will be used.
func NewMemoryContactStore(seed []*domain.Contact, logger *slog.Logger) *MemoryContactStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MemoryContactStore{
		collator: collate.New(language.English),
		contacts: make([]*domain.Contact, 0, len(seed)),
		logger:   logger.With(slog.String("component", "contact_store")),
	}
	for _, contact := range seed {
		s.contacts = append(s.contacts, contact.Clone())
	}
	s.sortLocked()
	return s
}

// Ensure MemoryContactStore implements store.ContactStore interface
var _ store.ContactStore = (*MemoryContactStore)(nil)

// List implements store.ContactStore.List.
// The search filter and the tag filter are applied in order, then the page
// window is cut from the matches. TotalCount counts matches before
// pagination, and HasNextPage reports whether matches exist past the window.
func (s *MemoryContactStore) List(ctx context.Context, params store.ListContactsParams) (*store.ContactPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.contacts

	if term := normalizeSearchTerm(params.Search); term != "" {
		matched := make([]*domain.Contact, 0, len(filtered))
		for _, contact := range filtered {
			if matchesSearch(contact, term) {
				matched = append(matched, contact)
			}
		}
		filtered = matched
	}

	switch params.Tag {
	case "", "All":
		// No tag filter.
	case "Favourite":
		matched := make([]*domain.Contact, 0, len(filtered))
		for _, contact := range filtered {
			if contact.IsFavorite {
				matched = append(matched, contact)
			}
		}
		filtered = matched
	default:
		matched := make([]*domain.Contact, 0, len(filtered))
		for _, contact := range filtered {
			if slices.Contains(contact.Tags, params.Tag) {
				matched = append(matched, contact)
			}
		}
		filtered = matched
	}

	total := len(filtered)
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if end < start {
		end = start
	}
	if end > total {
		end = total
	}

	window := filtered[start:end]
	page := &store.ContactPage{
		Contacts:    make([]*domain.Contact, 0, len(window)),
		TotalCount:  total,
		Page:        params.Page,
		HasNextPage: params.Page*params.Limit < total,
	}
	for _, contact := range window {
		page.Contacts = append(page.Contacts, contact.Clone())
	}
	return page, nil
}

// Create implements store.ContactStore.Create.
// Returns store.ErrInvalidEntity wrapping the domain error when the contact
// data fails validation.
func (s *MemoryContactStore) Create(ctx context.Context, params store.CreateContactParams) (*domain.Contact, error) {
	contact, err := domain.NewContact(params.Name, params.Phone, params.Email, params.ImageURL, params.Tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, contact)
	s.sortLocked()

	s.logger.DebugContext(ctx, "contact created",
		slog.String("contact_id", contact.ID),
		slog.Int("collection_size", len(s.contacts)))
	return contact.Clone(), nil
}

// Update implements store.ContactStore.Update.
// Only the fields set in params change. A tags update re-sorts the
// collection even though names are untouched, keeping the ordering pass
// unconditional for any tag-bearing write.
func (s *MemoryContactStore) Update(ctx context.Context, id string, params store.UpdateContactParams) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, store.ErrContactNotFound
	}

	updated := s.contacts[idx].Clone()
	if params.IsFavorite != nil {
		updated.IsFavorite = *params.IsFavorite
	}
	if params.Tags != nil {
		tags := make([]string, len(*params.Tags))
		copy(tags, *params.Tags)
		updated.Tags = tags
	}
	s.contacts[idx] = updated

	if params.Tags != nil {
		s.sortLocked()
	}

	s.logger.DebugContext(ctx, "contact updated", slog.String("contact_id", id))
	return updated.Clone(), nil
}

// Delete implements store.ContactStore.Delete.
// The remaining contacts keep their order; removal never triggers a re-sort.
func (s *MemoryContactStore) Delete(ctx context.Context, id string) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, store.ErrContactNotFound
	}

	removed := s.contacts[idx]
	s.contacts = slices.Delete(s.contacts, idx, idx+1)

	s.logger.DebugContext(ctx, "contact deleted",
		slog.String("contact_id", id),
		slog.Int("collection_size", len(s.contacts)))
	return removed, nil
}

// indexOfLocked returns the position of the contact with the given ID, or -1.
// Callers must hold mu.
func (s *MemoryContactStore) indexOfLocked(id string) int {
	return slices.IndexFunc(s.contacts, func(c *domain.Contact) bool {
		return c.ID == id
	})
}

// sortLocked re-sorts the collection by name. The sort is stable, so
// contacts with equal names keep their relative order. The collator is not
// safe for concurrent use; callers must hold mu.
func (s *MemoryContactStore) sortLocked() {
	slices.SortStableFunc(s.contacts, func(a, b *domain.Contact) int {
		return s.collator.CompareString(a.Name, b.Name)
	})
}

// normalizeSearchTerm lowercases and trims a raw search term. A term that
// normalizes to the empty string disables the search filter.
func normalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// matchesSearch reports whether a contact matches the normalized term by
// case-folded name, by digit-only phone, or by case-folded email. The phone
// clause applies only when the term itself contains digits.
func matchesSearch(contact *domain.Contact, term string) bool {
	if strings.Contains(strings.ToLower(contact.Name), term) {
		return true
	}
	if digits := digitsOnly(term); digits != "" && strings.Contains(digitsOnly(contact.Phone), digits) {
		return true
	}
	return contact.Email != "" && strings.Contains(strings.ToLower(contact.Email), term)
}

// digitsOnly strips every character outside 0-9.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
