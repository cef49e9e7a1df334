package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// FipeCache stores serialized FIPE responses.
// Key format: fipe:<category>:<path segments>. The tables change rarely, so
// a long TTL is acceptable.
type FipeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFipeCache creates a FipeCache wrapping the given Redis client.
func NewFipeCache(client *redis.Client, ttl time.Duration) *FipeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &FipeCache{client: client, ttl: ttl}
}

// Get returns the cached payload for the key parts, or (nil, nil) on a miss.
func (c *FipeCache) Get(ctx context.Context, parts ...string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(parts...)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("fipe cache get: %w", err)
	}
	return payload, nil
}

// Set stores a payload under the key parts with the configured TTL.
func (c *FipeCache) Set(ctx context.Context, payload []byte, parts ...string) error {
	return c.client.Set(ctx, c.key(parts...), payload, c.ttl).Err()
}

func (c *FipeCache) key(parts ...string) string {
	return "fipe:" + strings.Join(parts, ":")
}
