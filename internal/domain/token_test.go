package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := NewToken(userID)
	require.NoError(t, err)

	assert.Equal(t, userID, token.UserID)
	assert.Len(t, token.Key, TokenKeyLength*2) // hex encoding doubles the length
	assert.False(t, token.CreatedAt.IsZero())

	// Keys must differ between mints.
	other, err := NewToken(userID)
	require.NoError(t, err)
	assert.NotEqual(t, token.Key, other.Key)
}

func TestTokenValidate(t *testing.T) {
	t.Parallel()

	token := &Token{Key: "", UserID: uuid.New()}
	assert.ErrorIs(t, token.Validate(), ErrEmptyTokenKey)

	token = &Token{Key: "abc", UserID: uuid.Nil}
	assert.ErrorIs(t, token.Validate(), ErrEmptyTokenUserID)
}
