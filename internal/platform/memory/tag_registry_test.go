package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalvarado/contacts-api/internal/domain"
	"github.com/jalvarado/contacts-api/internal/store"
)

func TestNewMemoryTagRegistry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("seed is sorted case-insensitively", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work", "gym", "Family"}, nil)

		tags, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Family", "gym", "Work"}, tags)
	})

	t.Run("blank and duplicate seed entries collapse", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work", "", "  ", "work", "WORK"}, nil)

		tags, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Work"}, tags, "the first spelling wins")
	})

	t.Run("empty seed yields an empty registry", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry(nil, nil)

		tags, err := r.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})
}

func TestMemoryTagRegistryList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewMemoryTagRegistry([]string{"Work", "Gym"}, nil)

	tags, err := r.List(ctx)
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the registry.
	tags[0] = "Mutated"

	again, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gym", "Work"}, again)
}

func TestMemoryTagRegistryCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new tag is registered in sorted position", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work", "Family"}, nil)

		tags, created, err := r.Create(ctx, "Gym")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, []string{"Family", "Gym", "Work"}, tags)
	})

	t.Run("existing tag under different case is idempotent", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work", "Family"}, nil)

		tags, created, err := r.Create(ctx, "WORK")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, []string{"Family", "Work"}, tags, "the original spelling is retained")
	})

	t.Run("name is trimmed before comparison", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work"}, nil)

		tags, created, err := r.Create(ctx, "  work  ")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, []string{"Work"}, tags)

		tags, created, err = r.Create(ctx, "  Travel  ")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Contains(t, tags, "Travel", "stored spelling is the trimmed name")
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry([]string{"Work"}, nil)

		for _, name := range []string{"", "   ", "\t"} {
			_, _, err := r.Create(ctx, name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, store.ErrInvalidEntity))
			assert.True(t, errors.Is(err, domain.ErrTagNameRequired))
		}

		tags, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Work"}, tags, "rejected names must not change the registry")
	})

	t.Run("registry only grows", func(t *testing.T) {
		t.Parallel()
		r := NewMemoryTagRegistry(nil, nil)

		for _, name := range []string{"Work", "Gym", "Family", "gym"} {
			_, _, err := r.Create(ctx, name)
			require.NoError(t, err)
		}

		tags, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Family", "Gym", "Work"}, tags)
	})
}
