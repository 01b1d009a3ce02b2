package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/coursechef/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("round trips values", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := cache.NewMemory(0)

		_, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, m.Put(ctx, "k", []byte("v")))
		got, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("expires old entries", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m := cache.NewMemory(time.Hour)
		m.Now = func() time.Time { return now }

		require.NoError(t, m.Put(ctx, "old", []byte("1")))
		now = now.Add(30 * time.Minute)
		require.NoError(t, m.Put(ctx, "new", []byte("2")))
		now = now.Add(45 * time.Minute)

		_, ok, err := m.Get(ctx, "old")
		require.NoError(t, err)
		assert.False(t, ok)
		_, ok, err = m.Get(ctx, "new")
		require.NoError(t, err)
		assert.True(t, ok)

		n, err := m.Expire(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		m := cache.NewMemory(0)
		value := []byte("abc")

		require.NoError(t, m.Put(ctx, "k", value))
		value[0] = 'x'

		got, _, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})
}
