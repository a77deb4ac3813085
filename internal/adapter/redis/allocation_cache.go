package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-planner/internal/core/domain"
)

// AllocationCache implements port.AllocationCache on top of Redis. Entries
// are stored as JSON and expire after the configured TTL.
type AllocationCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewAllocationCache returns a cache using client. A zero ttl keeps entries
// until they are evicted.
func NewAllocationCache(client redis.Cmdable, ttl time.Duration) *AllocationCache {
	return &AllocationCache{client: client, ttl: ttl}
}

// Get returns the allocation stored under key, or nil on a miss.
func (c *AllocationCache) Get(ctx context.Context, key string) (*domain.Allocation, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a domain.Allocation
	if err = json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Set stores a under key.
func (c *AllocationCache) Set(ctx context.Context, key string, a *domain.Allocation) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
