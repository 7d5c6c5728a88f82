// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/backlist/internal/platform/constants"
)

// RedisCache implements [Cache] with JSON values under the catalog key prefix.
// It also satisfies the lifecycle invalidator used by the admin services.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache creates a [RedisCache]. Entries expire after ttl even without
// an admin mutation.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get implements [Cache].
func (store *RedisCache) Get(context context.Context, key string, target any) (bool, error) {
	raw, err := store.client.Get(context, constants.RedisPrefixCatalog+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_catalog_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("redis_catalog_decode_failed: %w", err)
	}
	return true, nil
}

// Set implements [Cache].
func (store *RedisCache) Set(context context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_catalog_encode_failed: %w", err)
	}

	if err := store.client.Set(context, constants.RedisPrefixCatalog+key, raw, store.ttl).Err(); err != nil {
		return fmt.Errorf("redis_catalog_set_failed: %w", err)
	}
	return nil
}

// Invalidate deletes every key under the catalog prefix.
func (store *RedisCache) Invalidate(context context.Context) error {
	iter := store.client.Scan(context, 0, constants.RedisPrefixCatalog+"*", 0).Iterator()
	for iter.Next(context) {
		if err := store.client.Del(context, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis_catalog_delete_failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis_catalog_scan_failed: %w", err)
	}
	return nil
}
