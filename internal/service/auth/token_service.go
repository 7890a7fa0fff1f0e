package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/store"
)

// TokenService manages opaque bearer tokens. Each user owns exactly one
// token: it is minted on the first successful login and returned verbatim on
// every login after that.
type TokenService interface {
	// GetOrCreateToken returns the user's token, minting one if the user
	// has none yet.
	GetOrCreateToken(ctx context.Context, userID uuid.UUID) (*domain.Token, error)

	// ValidateToken resolves a presented token key to the owning user's ID.
	// Returns ErrInvalidToken if the key is unknown.
	ValidateToken(ctx context.Context, key string) (uuid.UUID, error)
}

// StoreTokenService implements TokenService on top of a store.TokenStore.
type StoreTokenService struct {
	tokens store.TokenStore
	logger *slog.Logger
}

// NewStoreTokenService creates a StoreTokenService.
func NewStoreTokenService(tokens store.TokenStore, logger *slog.Logger) *StoreTokenService {
	if tokens == nil {
		panic("token store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StoreTokenService{
		tokens: tokens,
		logger: logger.With(slog.String("component", "token_service")),
	}
}

// Ensure StoreTokenService implements TokenService
var _ TokenService = (*StoreTokenService)(nil)

// GetOrCreateToken implements TokenService.GetOrCreateToken
func (s *StoreTokenService) GetOrCreateToken(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Token, error) {
	token, err := s.tokens.GetByUserID(ctx, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, store.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	token, err = domain.NewToken(userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		// A concurrent login may have created the token first; in that
		// case the stored one wins.
		if errors.Is(err, store.ErrDuplicate) {
			return s.tokens.GetByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Info("token issued", slog.String("user_id", userID.String()))
	return token, nil
}

// ValidateToken implements TokenService.ValidateToken
func (s *StoreTokenService) ValidateToken(ctx context.Context, key string) (uuid.UUID, error) {
	if key == "" {
		return uuid.Nil, ErrMissingToken
	}

	token, err := s.tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return uuid.Nil, ErrInvalidToken
		}
		return uuid.Nil, fmt.Errorf("failed to validate token: %w", err)
	}

	return token.UserID, nil
}
