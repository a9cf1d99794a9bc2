// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/constants"
)

// # Session Repository

// RedisSessionRepository implements [SessionRepository] using Redis.
// Each session is a single key mapping a token digest to its user ID,
// expired automatically by the store.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Set stores a refresh session keyed by the token digest.

Parameters:
  - context: context.Context
  - tokenHash: string (SHA-256 digest of the refresh token)
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Set(context context.Context, tokenHash, userID string, ttl time.Duration) error {

	key := sessionKey(tokenHash)

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Get resolves the user ID for a token digest.

Description: Returns apperr.Unauthorized if the session is absent or expired,
so callers can surface it directly to the client.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - string: Original UserID
  - error: apperr.Unauthorized or connectivity errors
*/
func (repository *RedisSessionRepository) Get(context context.Context, tokenHash string) (string, error) {

	key := sessionKey(tokenHash)

	userID, err := repository.client.Get(context, key).Result()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return userID, nil
}

/*
Delete revokes a session. Deleting an absent key is a no-op, which keeps
logout idempotent.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {

	key := sessionKey(tokenHash)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}

// sessionKey namespaces a token digest under the session cache taxonomy.
func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}
