package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kartikay_signage/internal/config"
)

// productTTL bounds staleness of the storefront listing after the back
// office edits the catalog.
const productTTL = 5 * time.Minute

// ProductCache is a redis read-through cache for product listings. A nil
// cache is valid and misses everything, so handlers don't special-case it.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(cfg config.Redis) *ProductCache {
	return &ProductCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping verifies connectivity and credentials at startup.
func (c *ProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get loads a cached value into v. Any miss, decode failure or redis error
// reports false and the caller falls through to the database.
func (c *ProductCache) Get(ctx context.Context, key string, v interface{}) bool {
	if c == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, v) == nil
}

// Set stores a value with the listing TTL. Failures are ignored; the cache
// is an optimization, never a source of truth.
func (c *ProductCache) Set(ctx context.Context, key string, v interface{}) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, productTTL)
}
