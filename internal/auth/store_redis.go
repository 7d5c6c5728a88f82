// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/backlist/internal/platform/constants"
)

// RedisRevocationStore implements [RevocationStore] with expiring Redis keys.
type RedisRevocationStore struct {
	client redis.UniversalClient
}

// NewRedisRevocationStore creates a Redis-backed [RevocationStore].
func NewRedisRevocationStore(client redis.UniversalClient) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
Revoke stores the token id with a TTL equal to the token's remaining lifetime.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration
*/
func (store *RedisRevocationStore) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if err := store.client.Set(context, constants.RedisPrefixRevokedSession+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}
	return nil
}

// IsRevoked implements [RevocationStore].
func (store *RedisRevocationStore) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := store.client.Exists(context, constants.RedisPrefixRevokedSession+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_lookup_failed: %w", err)
	}
	return count > 0, nil
}
