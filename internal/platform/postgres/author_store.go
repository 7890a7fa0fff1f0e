package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/store"
)

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the
// AuthorStore interface.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

// Ensure PostgresAuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// Create implements store.AuthorStore.Create
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		s.logger.Warn("author validation failed during create",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return err
	}

	query := `
		INSERT INTO authors (id, name, biography, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		author.ID,
		author.Name,
		author.Biography,
		author.CreatedAt,
		author.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to create author",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return MapError(err)
	}

	s.logger.Info("author created", slog.String("author_id", author.ID.String()))
	return nil
}

// GetByID implements store.AuthorStore.GetByID
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	query := `
		SELECT id, name, biography, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var author domain.Author
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.Biography,
		&author.CreatedAt,
		&author.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAuthorNotFound
		}
		s.logger.Error("failed to get author by ID",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return nil, MapError(err)
	}

	return &author, nil
}

// List implements store.AuthorStore.List
func (s *PostgresAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	query := `
		SELECT id, name, biography, created_at, updated_at
		FROM authors
		ORDER BY name, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list authors", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	authors := []*domain.Author{}
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(
			&author.ID,
			&author.Name,
			&author.Biography,
			&author.CreatedAt,
			&author.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		authors = append(authors, &author)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return authors, nil
}

// Update implements store.AuthorStore.Update
func (s *PostgresAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	author.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE authors
		SET name = $2, biography = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		author.ID,
		author.Name,
		author.Biography,
		author.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to update author",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAuthorNotFound)
}

// Delete implements store.AuthorStore.Delete
// Books referencing the author are removed by the ON DELETE CASCADE rule on
// the books table.
func (s *PostgresAuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete author",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAuthorNotFound); err != nil {
		return err
	}

	s.logger.Info("author deleted", slog.String("author_id", id.String()))
	return nil
}
