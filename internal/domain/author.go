package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common author validation errors.
var (
	ErrEmptyAuthorID     = errors.New("author ID cannot be empty")
	ErrEmptyAuthorName   = errors.New("author name cannot be empty")
	ErrAuthorNameTooLong = errors.New("author name must be at most 100 characters long")
)

// Author represents a book author in the catalog.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAuthor creates a new Author, generating its ID and timestamps.
func NewAuthor(name, biography string) (*Author, error) {
	now := time.Now().UTC()
	author := &Author{
		ID:        uuid.New(),
		Name:      name,
		Biography: biography,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks if the Author has valid data.
func (a *Author) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAuthorID
	}
	if a.Name == "" {
		return ErrEmptyAuthorName
	}
	if len(a.Name) > 100 {
		return ErrAuthorNameTooLong
	}
	return nil
}
