package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	_, found := cache.Get(ctx, "missing")
	assert.False(t, found)

	cache.Set(ctx, "answer", 42, time.Minute)
	got, found := cache.Get(ctx, "answer")
	require.True(t, found)
	assert.Equal(t, 42, got)
}

func TestInMemoryDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)

	cache.Set(ctx, "a", "1", time.Minute)
	cache.Set(ctx, "b", "2", time.Minute)
	require.NoError(t, cache.Delete(ctx, "a"))

	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
	_, found = cache.Get(ctx, "b")
	assert.True(t, found)
}

func TestInMemoryFlush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, int]("test", DefaultExpiration, DefaultCleanupInterval)

	cache.Set(ctx, "a", 1, time.Minute)
	require.NoError(t, cache.Flush(ctx))

	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
}

func TestInMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, int]("test", 10*time.Millisecond, time.Minute)

	cache.Set(ctx, "a", 1, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		_, found := cache.Get(ctx, "a")
		return !found
	}, time.Second, 5*time.Millisecond)
}
