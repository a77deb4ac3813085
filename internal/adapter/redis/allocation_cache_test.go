package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/core/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestAllocationCacheRoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewAllocationCache(client, time.Minute)
	ctx := context.Background()

	got, err := cache.Get(ctx, "alloc:missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := &domain.Allocation{
		ID:              "8f14e45f-ceea-467f-a0e6-4e2f6b1c7a10",
		Capacity:        7,
		TotalValue:      11,
		ImpressionsUsed: 7,
		Prioritized:     true,
		Pruned:          true,
		Considered:      2,
		Retained:        2,
		Items: []domain.AllocationItem{
			{Campaign: domain.Campaign{ID: 2, Customer: "Lolcat", Impressions: 3, Value: 5}, Count: 1},
			{Campaign: domain.Campaign{ID: 1, Customer: "Acme", Impressions: 2, Value: 3}, Count: 2},
		},
		CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.Set(ctx, "alloc:k", want))
	assert.True(t, mr.Exists("alloc:k"))
	assert.Equal(t, time.Minute, mr.TTL("alloc:k"))

	got, err = cache.Get(ctx, "alloc:k")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAllocationCacheExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewAllocationCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "alloc:k", &domain.Allocation{ID: "x"}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "alloc:k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAllocationCacheCorruptEntry(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewAllocationCache(client, 0)
	require.NoError(t, mr.Set("alloc:k", "{not json"))

	_, err := cache.Get(context.Background(), "alloc:k")
	require.Error(t, err)
}

func TestAllocationCacheUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	cache := NewAllocationCache(client, time.Minute)
	mr.Close()

	_, err = cache.Get(context.Background(), "alloc:k")
	require.Error(t, err)
	require.Error(t, cache.Set(context.Background(), "alloc:k", &domain.Allocation{}))
}
