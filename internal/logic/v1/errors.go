// Package v1 provides the authentication business logic: credential
// verification, session-token minting and token-to-user resolution.
//
// Error Handling:
// This package defines sentinel errors that represent authentication
// failures. They are wrapped with context using fmt.Errorf("%w") when
// returned and checked with errors.Is in the web and middleware layers.
// Every sentinel below maps to the same generic 401 at the HTTP boundary;
// only server-side logs keep the distinction. Anything that is not one of
// these sentinels is an infrastructure error and maps to a 500.
package v1

import "errors"

// Sentinel errors for authentication operations.
var (
	// ErrInvalidCredentials indicates the provided password does not match.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the user does not exist in the system.
	// HTTP Status: 401 Unauthorized (don't reveal user existence)
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound indicates the session token does not map to a live
	// session - either it never existed or its TTL elapsed; the cache does
	// not distinguish the two.
	// HTTP Status: 401 Unauthorized
	ErrSessionNotFound = errors.New("session not found")
)
