package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/service/auth"
	"github.com/quillby/bookstore-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing
type MockTokenStore struct {
	// Tokens is keyed by token key
	Tokens map[string]*domain.Token

	CreateError error
}

// NewMockTokenStore creates a new mock store with initialized defaults
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens: make(map[string]*domain.Token),
	}
}

var _ store.TokenStore = (*MockTokenStore)(nil)

// Create implements the TokenStore interface
func (m *MockTokenStore) Create(ctx context.Context, token *domain.Token) error {
	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Tokens {
		if existing.UserID == token.UserID {
			return store.ErrDuplicate
		}
	}

	m.Tokens[token.Key] = token
	return nil
}

// GetByKey implements the TokenStore interface
func (m *MockTokenStore) GetByKey(ctx context.Context, key string) (*domain.Token, error) {
	token, ok := m.Tokens[key]
	if !ok {
		return nil, store.ErrTokenNotFound
	}
	return token, nil
}

// GetByUserID implements the TokenStore interface
func (m *MockTokenStore) GetByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Token, error) {
	for _, token := range m.Tokens {
		if token.UserID == userID {
			return token, nil
		}
	}
	return nil, store.ErrTokenNotFound
}

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// Token returned by GetOrCreateToken when set
	Token *domain.Token
	Err   error

	// ValidUserIDs maps token keys accepted by ValidateToken to user IDs
	ValidUserIDs map[string]uuid.UUID
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GetOrCreateToken implements the auth.TokenService interface
func (m *MockTokenService) GetOrCreateToken(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Token, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Token != nil {
		return m.Token, nil
	}
	return domain.NewToken(userID)
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, key string) (uuid.UUID, error) {
	if m.Err != nil {
		return uuid.Nil, m.Err
	}
	userID, ok := m.ValidUserIDs[key]
	if !ok {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return userID, nil
}

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier
// for testing. Hash prefixes the password; Compare succeeds when
// ShouldSucceed is set or when the hash matches the prefix convention.
type MockPasswordHasher struct {
	ShouldSucceed bool
	HashError     error

	CompareCallCount int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashError != nil {
		return "", m.HashError
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.ShouldSucceed || hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
