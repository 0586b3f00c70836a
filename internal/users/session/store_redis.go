// Copyright (c) 2026 Moim. All rights reserved.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seonokim/moim/internal/platform/constants"
	"github.com/seonokim/moim/internal/platform/sec"
)

// # Redis Store

// RedisStore implements [Store] on Redis.
//
// Records are JSON-serialized identities under a prefixed key, and expiry
// is delegated entirely to Redis key TTLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store over an established Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// sessionKey builds the namespaced Redis key for a session ID.
func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Set writes the identity record with the given lifetime.
func (store *RedisStore) Set(context context.Context, sessionID string, account *sec.CurrentAccount, ttl time.Duration) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("redis_session_store_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, sessionKey(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_store_set_failed: %w", err)
	}
	return nil
}

// Get loads the identity bound to a session ID, or nil when the key is
// absent or already expired.
func (store *RedisStore) Get(context context.Context, sessionID string) (*sec.CurrentAccount, error) {
	payload, err := store.client.Get(context, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_session_store_get_failed: %w", err)
	}

	account := &sec.CurrentAccount{}
	if err := json.Unmarshal(payload, account); err != nil {
		return nil, fmt.Errorf("redis_session_store_unmarshal_failed: %w", err)
	}
	return account, nil
}

// Delete destroys a session record. Absent keys are a no-op.
func (store *RedisStore) Delete(context context.Context, sessionID string) error {
	if err := store.client.Del(context, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_session_store_delete_failed: %w", err)
	}
	return nil
}
