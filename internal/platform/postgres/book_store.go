package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/store"
)

// bookOrderColumns whitelists the columns the ordering query parameter may
// reference. Anything else falls back to the default ordering.
var bookOrderColumns = map[string]string{
	"title":            "b.title",
	"price":            "b.price",
	"publication_date": "b.publication_date",
	"created_at":       "b.created_at",
}

const bookColumns = `b.id, b.title, b.description, b.price, b.publication_date,
		b.author_id, b.category_id, b.created_at, b.updated_at`

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
// Returns store.ErrInvalidEntity if the referenced author or category does
// not exist (foreign key violation).
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		s.logger.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return err
	}

	query := `
		INSERT INTO books (id, title, description, price, publication_date,
			author_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Description,
		book.Price,
		book.PublicationDate,
		book.AuthorID,
		book.CategoryID,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			s.logger.Warn("foreign key violation during book creation",
				slog.String("book_id", book.ID.String()),
				slog.String("author_id", book.AuthorID.String()),
				slog.String("category_id", book.CategoryID.String()))
			return fmt.Errorf("%w: referenced author or category not found",
				store.ErrInvalidEntity)
		}
		s.logger.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return MapError(err)
	}

	s.logger.Info("book created",
		slog.String("book_id", book.ID.String()),
		slog.String("title", book.Title))
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.id = $1`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Description,
		&book.Price,
		&book.PublicationDate,
		&book.AuthorID,
		&book.CategoryID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBookNotFound
		}
		s.logger.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, MapError(err)
	}

	return &book, nil
}

// List implements store.BookStore.List
// It counts the matches first, then fetches the requested page, so the total
// reflects the filter rather than the page.
func (s *PostgresBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
) ([]*domain.Book, int, error) {
	where, args := buildBookWhere(filter)

	countQuery := `
		SELECT COUNT(*)
		FROM books b
		JOIN authors a ON a.id = b.author_id
		JOIN categories c ON c.id = b.category_id
	` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		s.logger.Error("failed to count books", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	query := `
		SELECT ` + bookColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		JOIN categories c ON c.id = b.category_id
	` + where + bookOrderClause(filter.OrderBy)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to list books", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	books := []*domain.Book{}
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Description,
			&book.Price,
			&book.PublicationDate,
			&book.AuthorID,
			&book.CategoryID,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			return nil, 0, MapError(err)
		}
		books = append(books, &book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return books, total, nil
}

// Update implements store.BookStore.Update
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	book.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE books
		SET title = $2, description = $3, price = $4, publication_date = $5,
			author_id = $6, category_id = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Description,
		book.Price,
		book.PublicationDate,
		book.AuthorID,
		book.CategoryID,
		book.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced author or category not found",
				store.ErrInvalidEntity)
		}
		s.logger.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrBookNotFound)
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBookNotFound); err != nil {
		return err
	}

	s.logger.Info("book deleted", slog.String("book_id", id.String()))
	return nil
}

// buildBookWhere translates a BookFilter into a WHERE clause and its
// positional arguments. The search term is matched case-insensitively as a
// substring of title or description; author and category names match exactly.
func buildBookWhere(filter store.BookFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(b.title ILIKE $%d OR b.description ILIKE $%d)", n, n))
	}
	if filter.AuthorName != "" {
		args = append(args, filter.AuthorName)
		conditions = append(conditions, fmt.Sprintf("a.name = $%d", len(args)))
	}
	if filter.CategoryName != "" {
		args = append(args, filter.CategoryName)
		conditions = append(conditions, fmt.Sprintf("c.name = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// bookOrderClause translates an ordering parameter ("price", "-title", ...)
// into an ORDER BY clause over whitelisted columns. Unknown fields fall back
// to creation order. A trailing id column keeps the ordering deterministic.
func bookOrderClause(orderBy string) string {
	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = orderBy[1:]
	}

	column, ok := bookOrderColumns[field]
	if !ok {
		column = "b.created_at"
		direction = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s %s, b.id", column, direction)
}
