package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("marks new submission as processed", func(t *testing.T) {
		key := "payment:tenant-1:RCPT-001"
		ttl := 1 * time.Hour

		isNew, err := store.MarkProcessed(ctx, key, ttl)
		require.NoError(t, err)
		assert.True(t, isNew, "new submission should return true")
	})

	t.Run("returns false for already processed submission", func(t *testing.T) {
		key := "payment:tenant-1:RCPT-002"
		ttl := 1 * time.Hour

		// First call
		isNew, err := store.MarkProcessed(ctx, key, ttl)
		require.NoError(t, err)
		assert.True(t, isNew)

		// Second call - should return false
		isNew, err = store.MarkProcessed(ctx, key, ttl)
		require.NoError(t, err)
		assert.False(t, isNew, "already processed submission should return false")
	})

	t.Run("allows resubmission after expiration", func(t *testing.T) {
		key := "payment:tenant-1:RCPT-003"
		ttl := 10 * time.Millisecond

		// First call
		isNew, err := store.MarkProcessed(ctx, key, ttl)
		require.NoError(t, err)
		assert.True(t, isNew)

		// Wait for expiration
		time.Sleep(20 * time.Millisecond)

		// Should allow resubmission after expiration
		isNew, err = store.MarkProcessed(ctx, key, ttl)
		require.NoError(t, err)
		assert.True(t, isNew, "expired submission should be reprocessable")
	})
}

func TestInMemoryIdempotencyStore_IsProcessed(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("returns false for unknown submission", func(t *testing.T) {
		processed, err := store.IsProcessed(ctx, "unknown-reference")
		require.NoError(t, err)
		assert.False(t, processed)
	})

	t.Run("returns true for processed submission", func(t *testing.T) {
		key := "payment:tenant-1:PAY-001"
		_, err := store.MarkProcessed(ctx, key, 1*time.Hour)
		require.NoError(t, err)

		processed, err := store.IsProcessed(ctx, key)
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("returns false for expired submission", func(t *testing.T) {
		key := "payment:tenant-1:PAY-002"
		_, err := store.MarkProcessed(ctx, key, 10*time.Millisecond)
		require.NoError(t, err)

		// Wait for expiration
		time.Sleep(20 * time.Millisecond)

		processed, err := store.IsProcessed(ctx, key)
		require.NoError(t, err)
		assert.False(t, processed, "expired submission should return false")
	})
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}

func TestInMemoryIdempotencyStore_Size(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()
	assert.Equal(t, 0, store.Size())

	_, err := store.MarkProcessed(ctx, "ref-1", time.Hour)
	require.NoError(t, err)
	_, err = store.MarkProcessed(ctx, "ref-2", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Size())
}
