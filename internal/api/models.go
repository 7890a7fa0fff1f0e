package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
)

// Common request/response structures

// dateLayout is the wire format for publication dates.
const dateLayout = "2006-01-02"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterResponse defines the successful response for user registration.
type RegisterResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
// Token is the user's opaque bearer token, identical on every login.
type LoginResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
}

// AuthorRequest defines the payload for creating or updating an author.
type AuthorRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Biography string `json:"biography"`
}

// CategoryRequest defines the payload for creating or updating a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// BookRequest defines the payload for creating or updating a book.
// The publication date uses the YYYY-MM-DD wire format.
type BookRequest struct {
	Title           string  `json:"title"            validate:"required,max=200"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	PublicationDate string  `json:"publication_date" validate:"required,datetime=2006-01-02"`
	AuthorID        string  `json:"author_id"        validate:"required,uuid"`
	CategoryID      string  `json:"category_id"      validate:"required,uuid"`
}

// BookResponse represents the response data for a single book.
type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	PublicationDate string    `json:"publication_date"`
	AuthorID        uuid.UUID `json:"author_id"`
	CategoryID      uuid.UUID `json:"category_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookListResponse is the paginated book listing response.
type BookListResponse struct {
	Count    int            `json:"count"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Results  []BookResponse `json:"results"`
}

// BookCatalogResponse is the aggregate listing-page response: the book set
// together with the full author and category reference lists.
type BookCatalogResponse struct {
	Authors    []*domain.Author   `json:"authors"`
	Categories []*domain.Category `json:"categories"`
	Books      []BookResponse     `json:"books"`
}

// bookToResponse converts a domain Book into its wire representation.
func bookToResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:              book.ID,
		Title:           book.Title,
		Description:     book.Description,
		Price:           book.Price,
		PublicationDate: book.PublicationDate.Format(dateLayout),
		AuthorID:        book.AuthorID,
		CategoryID:      book.CategoryID,
		CreatedAt:       book.CreatedAt,
		UpdatedAt:       book.UpdatedAt,
	}
}

// booksToResponses converts a slice of domain Books.
func booksToResponses(books []*domain.Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, bookToResponse(book))
	}
	return responses
}
