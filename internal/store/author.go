package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
)

// AuthorStore defines the interface for author data persistence.
type AuthorStore interface {
	// Create saves a new author to the store.
	Create(ctx context.Context, author *domain.Author) error

	// GetByID retrieves an author by its unique ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// List retrieves all authors ordered by name.
	List(ctx context.Context) ([]*domain.Author, error)

	// Update modifies an existing author.
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes an author by ID. Books referencing the author are
	// removed with it by the store's cascade rule.
	// Returns ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
