package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
)

// TokenStore defines the interface for auth token persistence.
type TokenStore interface {
	// Create saves a new token.
	// Returns ErrDuplicate if the user already has a token.
	Create(ctx context.Context, token *domain.Token) error

	// GetByKey retrieves a token by its opaque key.
	// Returns ErrTokenNotFound if no such token exists.
	GetByKey(ctx context.Context, key string) (*domain.Token, error)

	// GetByUserID retrieves the token belonging to the given user.
	// Returns ErrTokenNotFound if the user has no token yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Token, error)
}
