package v1

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenLength is the exact length of every session token. Clients depend
// on it, so it is part of the wire contract.
const TokenLength = 128

// tokenBytes hex-encodes to TokenLength characters and carries 512 bits of
// entropy, so collisions need no explicit uniqueness check.
const tokenBytes = TokenLength / 2

// TokenGenerator mints opaque session identifiers.
type TokenGenerator interface {
	// Generate returns a new TokenLength-character token on every call.
	Generate() (string, error)
}

// RandomTokenGenerator implements TokenGenerator on crypto/rand.
type RandomTokenGenerator struct{}

// NewTokenGenerator creates a RandomTokenGenerator.
func NewTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// Generate returns a new random token. It fails only when the system
// entropy source does.
func (g *RandomTokenGenerator) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
