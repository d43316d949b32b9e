package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every Backend must share.
func runStoreContract(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := b.For("contract-a").Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := b.For("contract-a")
		require.NoError(t, s.Set(ctx, KeyEmail, "a@x.com"))
		v, ok, err := s.Get(ctx, KeyEmail)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a@x.com", v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := b.For("contract-a")
		require.NoError(t, s.Set(ctx, KeyPassword, "old"))
		require.NoError(t, s.Set(ctx, KeyPassword, "new"))
		v, _, err := s.Get(ctx, KeyPassword)
		require.NoError(t, err)
		assert.Equal(t, "new", v)
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		require.NoError(t, b.For("contract-a").Set(ctx, KeyIsLoggedIn, "true"))
		_, ok, err := b.For("contract-b").Get(ctx, KeyIsLoggedIn)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		s := b.For("contract-a")
		require.NoError(t, s.Set(ctx, KeyCart, "[]"))
		require.NoError(t, s.Remove(ctx, KeyCart))
		require.NoError(t, s.Remove(ctx, KeyCart))
		_, ok, err := s.Get(ctx, KeyCart)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Cleanup(func() {
		for _, scope := range []string{"contract-a", "contract-b"} {
			for _, k := range []string{KeyEmail, KeyPassword, KeyIsLoggedIn, KeyCart} {
				_ = b.For(scope).Remove(ctx, k)
			}
		}
	})
}

func TestMemoryBackend_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryBackend())
}

func TestMemoryBackend_RemoveDropsEmptyScope(t *testing.T) {
	b := NewMemoryBackend()
	ctx := context.Background()
	s := b.For("scope")

	require.NoError(t, s.Set(ctx, KeyEmail, "a@x.com"))
	require.NoError(t, s.Remove(ctx, KeyEmail))

	assert.Empty(t, b.scopes)
}
