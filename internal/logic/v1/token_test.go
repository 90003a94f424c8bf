package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenGeneratorLength(t *testing.T) {
	gen := NewTokenGenerator()

	token, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, token, TokenLength)

	for _, r := range token {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestRandomTokenGeneratorUniqueness(t *testing.T) {
	gen := NewTokenGenerator()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token collision after %d draws", i)
		seen[token] = struct{}{}
	}
}
