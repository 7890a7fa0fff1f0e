package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
)

// BookFilter narrows and orders a book listing. The zero value selects every
// book in insertion order.
type BookFilter struct {
	// Search is matched case-insensitively as a substring of title or
	// description.
	Search string

	// AuthorName filters by exact author name.
	AuthorName string

	// CategoryName filters by exact category name.
	CategoryName string

	// OrderBy is one of the whitelisted book columns. A "-" prefix selects
	// descending order (e.g. "-price").
	OrderBy string

	// Limit and Offset paginate the result. Limit <= 0 disables pagination.
	Limit  int
	Offset int
}

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create saves a new book to the store.
	// Returns ErrInvalidEntity if the referenced author or category does
	// not exist.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// List retrieves books matching the filter, together with the total
	// number of matches before pagination.
	List(ctx context.Context, filter BookFilter) ([]*domain.Book, int, error)

	// Update modifies an existing book.
	// Returns ErrBookNotFound if the book does not exist and
	// ErrInvalidEntity if the new author or category reference is unknown.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
