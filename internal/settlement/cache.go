package settlement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores computed settlement results per trip. The engine itself is a
// pure function; caching is layered outside it and invalidated whenever an
// expense or payment for the trip changes.
type Cache interface {
	Get(ctx context.Context, tripID string) (*Result, bool)
	Set(ctx context.Context, tripID string, result *Result) error
	Invalidate(ctx context.Context, tripID string) error
}

// cacheTTL bounds staleness even if an invalidation is missed.
const cacheTTL = 5 * time.Minute

func cacheKey(tripID string) string {
	return "settlement:" + tripID
}

// RedisCache caches settlement results in Redis as JSON.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed settlement cache.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (c *RedisCache) Get(ctx context.Context, tripID string) (*Result, bool) {
	val, err := c.client.Get(ctx, cacheKey(tripID)).Result()
	if err != nil {
		return nil, false
	}

	var result Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, tripID string, result *Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(tripID), data, cacheTTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, tripID string) error {
	return c.client.Del(ctx, cacheKey(tripID)).Err()
}

// NoopCache is used when no Redis address is configured: every lookup is a
// miss and the settlement is recomputed from scratch, which is cheap for a
// single trip's data.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (c *NoopCache) Get(ctx context.Context, tripID string) (*Result, bool) {
	return nil, false
}

func (c *NoopCache) Set(ctx context.Context, tripID string, result *Result) error {
	return nil
}

func (c *NoopCache) Invalidate(ctx context.Context, tripID string) error {
	return nil
}
