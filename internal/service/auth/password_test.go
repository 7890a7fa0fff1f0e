package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	// Minimum cost keeps the test fast.
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("opensesame")
	require.NoError(t, err)
	assert.NotEqual(t, "opensesame", hash)

	assert.NoError(t, hasher.Compare(hash, "opensesame"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.NotZero(t, hasher.cost)
}
