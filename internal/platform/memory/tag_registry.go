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

// MemoryTagRegistry implements the store.TagRegistry interface with a
// mutex-guarded slice kept sorted under a case-insensitive collation.
type MemoryTagRegistry struct {
	mu       sync.Mutex
	collator *collate.Collator
	tags     []string
	logger   *slog.Logger
}

// NewMemoryTagRegistry creates an in-memory TagRegistry seeded with the given
// tags. Blank seed entries are dropped, and entries that repeat under a
// case-insensitive comparison collapse to their first occurrence.
// If logger is nil, a default logger will be used.
func NewMemoryTagRegistry(seed []string, logger *slog.Logger) *MemoryTagRegistry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &MemoryTagRegistry{
		collator: collate.New(language.English, collate.IgnoreCase),
		tags:     make([]string, 0, len(seed)),
		logger:   logger.With(slog.String("component", "tag_registry")),
	}
	for _, tag := range seed {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || r.indexOfLocked(trimmed) >= 0 {
			continue
		}
		r.tags = append(r.tags, trimmed)
	}
	r.sortLocked()
	return r
}

// Ensure MemoryTagRegistry implements store.TagRegistry interface
var _ store.TagRegistry = (*MemoryTagRegistry)(nil)

// List implements store.TagRegistry.List.
func (r *MemoryTagRegistry) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tags), nil
}

// Create implements store.TagRegistry.Create.
// A name that already exists under a case-insensitive comparison leaves the
// registry unchanged and reports created as false. The first spelling of a
// tag wins; later variants never replace it.
func (r *MemoryTagRegistry) Create(ctx context.Context, name string) ([]string, bool, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, false, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTagNameRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOfLocked(trimmed) >= 0 {
		return slices.Clone(r.tags), false, nil
	}

	r.tags = append(r.tags, trimmed)
	r.sortLocked()

	r.logger.DebugContext(ctx, "tag registered",
		slog.String("tag", trimmed),
		slog.Int("registry_size", len(r.tags)))
	return slices.Clone(r.tags), true, nil
}

// indexOfLocked returns the position of the tag matching name under a
// case-insensitive comparison, or -1. Callers must hold mu.
func (r *MemoryTagRegistry) indexOfLocked(name string) int {
	return slices.IndexFunc(r.tags, func(tag string) bool {
		return strings.EqualFold(tag, name)
	})
}

// sortLocked re-sorts the registry. The collator is not safe for concurrent
// use; callers must hold mu.
func (r *MemoryTagRegistry) sortLocked() {
	slices.SortStableFunc(r.tags, r.collator.CompareString)
}
