package optionstore_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/pkg/optionstore"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing option", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewMemoryStore()
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, optionstore.ErrNotFound)
		assert.True(t, optionstore.IsNotFound(err))
	})

	t.Run("round trips through JSON", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "theme_opts", map[string]any{"title": "Hi", "count": 3}))

		got, err := s.Get(ctx, "theme_opts")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "Hi", "count": float64(3)}, got)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "opts", map[string]any{"a": "1"}))

		got, err := s.Get(ctx, "opts")
		require.NoError(t, err)
		got.(map[string]any)["a"] = "changed"

		again, err := s.Get(ctx, "opts")
		require.NoError(t, err)
		assert.Equal(t, "1", again.(map[string]any)["a"])
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "a", "x"))
		assert.Equal(t, 1, s.Len())
		require.NoError(t, s.Delete(ctx, "a"))
		require.NoError(t, s.Delete(ctx, "a"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("unencodable value", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewMemoryStore()
		err := s.Set(ctx, "bad", math.NaN())
		assert.ErrorIs(t, err, optionstore.ErrEncode)
		assert.Equal(t, 0, s.Len())
	})
}
