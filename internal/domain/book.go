package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common book validation errors.
var (
	ErrEmptyBookID          = errors.New("book ID cannot be empty")
	ErrEmptyBookTitle       = errors.New("book title cannot be empty")
	ErrBookTitleTooLong     = errors.New("book title must be at most 200 characters long")
	ErrNonPositivePrice     = errors.New("price must be a positive value")
	ErrEmptyPublicationDate = errors.New("publication date cannot be empty")
	ErrEmptyBookAuthorID    = errors.New("book author ID cannot be empty")
	ErrEmptyBookCategoryID  = errors.New("book category ID cannot be empty")
)

// Book represents a book in the catalog. It references its Author and
// Category by ID; referential integrity is enforced by the store.
type Book struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	PublicationDate time.Time `json:"publication_date"`
	AuthorID        uuid.UUID `json:"author_id"`
	CategoryID      uuid.UUID `json:"category_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewBook creates a new Book, generating its ID and timestamps.
func NewBook(
	title, description string,
	price float64,
	publicationDate time.Time,
	authorID, categoryID uuid.UUID,
) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		Price:           price,
		PublicationDate: publicationDate,
		AuthorID:        authorID,
		CategoryID:      categoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookID
	}
	if b.Title == "" {
		return ErrEmptyBookTitle
	}
	if len(b.Title) > 200 {
		return ErrBookTitleTooLong
	}
	if b.Price <= 0 {
		return ErrNonPositivePrice
	}
	if b.PublicationDate.IsZero() {
		return ErrEmptyPublicationDate
	}
	if b.AuthorID == uuid.Nil {
		return ErrEmptyBookAuthorID
	}
	if b.CategoryID == uuid.Nil {
		return ErrEmptyBookCategoryID
	}
	return nil
}
