package category

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL    = 5 * time.Minute
	generationCacheKey = "trivia:categories:generation"
	listCacheKeyPrefix = "trivia:categories:by_type:"
)

// ListCache stores the label-ordered category listing between writes.
//
// Entries are versioned by a generation that Invalidate advances. Get reports
// the generation it observed and Set writes under that generation, so a
// listing read from the store before a concurrent write is never served after
// the write's Invalidate.
type ListCache interface {
	Get(ctx context.Context) ([]Category, int64, error)
	Set(ctx context.Context, generation int64, categories []Category) error
	Invalidate(ctx context.Context) error
}

// Cache provides a Redis-backed ListCache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ListCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func listCacheKey(generation int64) string {
	return listCacheKeyPrefix + strconv.FormatInt(generation, 10)
}

// Get returns the cached listing for the current generation. A miss yields a
// nil slice and the generation a following Set must use.
func (c *Cache) Get(ctx context.Context) ([]Category, int64, error) {
	generation, err := c.client.Get(ctx, generationCacheKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	data, err := c.client.Get(ctx, listCacheKey(generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, nil
		}
		return nil, 0, err
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, 0, err
	}
	return categories, generation, nil
}

func (c *Cache) Set(ctx context.Context, generation int64, categories []Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listCacheKey(generation), data, c.ttl).Err()
}

// Invalidate advances the generation. Listings stored under older generations
// are no longer read and expire with their TTL.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationCacheKey).Err()
}
