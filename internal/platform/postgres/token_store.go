package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Create implements store.TokenStore.Create
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO auth_tokens (key, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, token.Key, token.UserID, token.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: token for user %s", store.ErrDuplicate, token.UserID)
		}
		s.logger.Error("failed to create token",
			slog.String("error", err.Error()),
			slog.String("user_id", token.UserID.String()))
		return MapError(err)
	}

	s.logger.Info("token created", slog.String("user_id", token.UserID.String()))
	return nil
}

// GetByKey implements store.TokenStore.GetByKey
func (s *PostgresTokenStore) GetByKey(ctx context.Context, key string) (*domain.Token, error) {
	query := `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE key = $1
	`
	return s.scanToken(s.db.QueryRowContext(ctx, query, key))
}

// GetByUserID implements store.TokenStore.GetByUserID
func (s *PostgresTokenStore) GetByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Token, error) {
	query := `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE user_id = $1
	`
	return s.scanToken(s.db.QueryRowContext(ctx, query, userID))
}

func (s *PostgresTokenStore) scanToken(row *sql.Row) (*domain.Token, error) {
	var token domain.Token
	err := row.Scan(&token.Key, &token.UserID, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTokenNotFound
		}
		s.logger.Error("failed to scan token row", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return &token, nil
}
