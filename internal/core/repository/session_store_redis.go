package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/battlegear/api-server/internal/core/domain"
)

// sessionKeyPrefix namespaces session entries in the shared Redis instance.
const sessionKeyPrefix = "sessions/"

// RedisSessionStore implements domain.SessionStore on top of Redis.
// Expiry is handled entirely by Redis TTL eviction; an expired token reads
// the same as one that never existed.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new RedisSessionStore.
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Set stores token -> userID with the given time to live.
func (s *RedisSessionStore) Set(ctx context.Context, token string, userID int, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Get resolves a token to the owning user id.
// Returns domain.ErrSessionNotFound on a cache miss.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (int, error) {
	userID, err := s.client.Get(ctx, sessionKey(token)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}
