package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bistro/pkg/model"

	"github.com/redis/go-redis/v9"
)

const ProductsCacheKey = "bistro:catalog:products"

// ProductCache holds the serialized menu. A miss is (nil, false, nil).
type ProductCache interface {
	Get(ctx context.Context) ([]model.Product, bool, error)
	Set(ctx context.Context, products []model.Product) error
	Invalidate(ctx context.Context) error
}

type redisProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisProductCache returns a cache backed by rdb, or one that always
// misses when rdb is nil.
func NewRedisProductCache(rdb *redis.Client, ttl time.Duration) ProductCache {
	if rdb == nil {
		return noCache{}
	}
	return &redisProductCache{rdb: rdb, ttl: ttl}
}

func (c *redisProductCache) Get(ctx context.Context) ([]model.Product, bool, error) {
	data, err := c.rdb.Get(ctx, ProductsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode catalog cache: %w", err)
	}
	return products, true, nil
}

func (c *redisProductCache) Set(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog cache: %w", err)
	}
	if err := c.rdb.Set(ctx, ProductsCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

func (c *redisProductCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, ProductsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}

type noCache struct{}

func (noCache) Get(context.Context) ([]model.Product, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, []model.Product) error { return nil }
func (noCache) Invalidate(context.Context) error { return nil }
