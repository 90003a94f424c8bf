package domain

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned by SessionStore.Get when the token does
// not map to a live session. An expired session is indistinguishable from
// one that never existed; the cache evicts on TTL.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is a key/value cache binding an opaque session token to the
// owning user id, with per-entry expiry. The Logic layer depends on this
// interface only; the Redis implementation lives in internal/core/repository.
type SessionStore interface {
	// Set stores token -> userID with the given time to live.
	Set(ctx context.Context, token string, userID int, ttl time.Duration) error

	// Get resolves a token to the owning user id.
	// Returns ErrSessionNotFound on a cache miss.
	Get(ctx context.Context, token string) (int, error)
}
