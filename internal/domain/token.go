package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TokenKeyLength is the number of random bytes behind a token key.
// Encoded as hex this yields a 40-character opaque string.
const TokenKeyLength = 20

// Common token validation errors.
var (
	ErrEmptyTokenKey    = errors.New("token key cannot be empty")
	ErrEmptyTokenUserID = errors.New("token user ID cannot be empty")
)

// Token is an opaque bearer credential identifying a single User. Exactly one
// token exists per user; it is created on first successful login and reused
// on every login after that.
type Token struct {
	Key       string    `json:"key"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewToken mints a Token for the given user with a random key.
func NewToken(userID uuid.UUID) (*Token, error) {
	key, err := generateTokenKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token key: %w", err)
	}

	token := &Token{
		Key:       key,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := token.Validate(); err != nil {
		return nil, err
	}

	return token, nil
}

// Validate checks if the Token has valid data.
func (t *Token) Validate() error {
	if t.Key == "" {
		return ErrEmptyTokenKey
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTokenUserID
	}
	return nil
}

func generateTokenKey() (string, error) {
	b := make([]byte, TokenKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
