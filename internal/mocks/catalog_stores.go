package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/store"
)

// MockAuthorStore implements store.AuthorStore for testing
type MockAuthorStore struct {
	CreateFn func(ctx context.Context, author *domain.Author) error
	DeleteFn func(ctx context.Context, id uuid.UUID) error

	Authors map[uuid.UUID]*domain.Author
}

// NewMockAuthorStore creates a new mock store with initialized defaults
func NewMockAuthorStore() *MockAuthorStore {
	return &MockAuthorStore{
		Authors: make(map[uuid.UUID]*domain.Author),
	}
}

var _ store.AuthorStore = (*MockAuthorStore)(nil)

// Create implements the AuthorStore interface
func (m *MockAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, author)
	}
	m.Authors[author.ID] = author
	return nil
}

// GetByID implements the AuthorStore interface
func (m *MockAuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	author, ok := m.Authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	return author, nil
}

// List implements the AuthorStore interface
func (m *MockAuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	authors := make([]*domain.Author, 0, len(m.Authors))
	for _, author := range m.Authors {
		authors = append(authors, author)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })
	return authors, nil
}

// Update implements the AuthorStore interface
func (m *MockAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if _, ok := m.Authors[author.ID]; !ok {
		return store.ErrAuthorNotFound
	}
	m.Authors[author.ID] = author
	return nil
}

// Delete implements the AuthorStore interface
func (m *MockAuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Authors[id]; !ok {
		return store.ErrAuthorNotFound
	}
	delete(m.Authors, id)
	return nil
}

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	Categories map[uuid.UUID]*domain.Category
}

// NewMockCategoryStore creates a new mock store with initialized defaults
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// Create implements the CategoryStore interface
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	m.Categories[category.ID] = category
	return nil
}

// GetByID implements the CategoryStore interface
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}

// List implements the CategoryStore interface
func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Update implements the CategoryStore interface
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if _, ok := m.Categories[category.ID]; !ok {
		return store.ErrCategoryNotFound
	}
	m.Categories[category.ID] = category
	return nil
}

// Delete implements the CategoryStore interface
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// MockBookStore implements store.BookStore for testing. Its List default
// mirrors the real store's filter semantics over the in-memory map: search
// over title and description, exact name filters through the linked author
// and category stores, ordering over the whitelisted fields, then pagination.
type MockBookStore struct {
	CreateFn func(ctx context.Context, book *domain.Book) error
	ListFn   func(ctx context.Context, filter store.BookFilter) ([]*domain.Book, int, error)

	Books      map[uuid.UUID]*domain.Book
	AuthorsRef *MockAuthorStore
	CatsRef    *MockCategoryStore
}

// NewMockBookStore creates a new mock store with initialized defaults
func NewMockBookStore(authors *MockAuthorStore, categories *MockCategoryStore) *MockBookStore {
	return &MockBookStore{
		Books:      make(map[uuid.UUID]*domain.Book),
		AuthorsRef: authors,
		CatsRef:    categories,
	}
}

var _ store.BookStore = (*MockBookStore)(nil)

// Create implements the BookStore interface. It enforces referential
// integrity against the linked author and category stores when present.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	if ok := m.referencesExist(book); !ok {
		return store.ErrInvalidEntity
	}

	m.Books[book.ID] = book
	return nil
}

// GetByID implements the BookStore interface
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	book, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return book, nil
}

// List implements the BookStore interface
func (m *MockBookStore) List(
	ctx context.Context,
	filter store.BookFilter,
) ([]*domain.Book, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	matched := []*domain.Book{}
	for _, book := range m.Books {
		if m.matches(book, filter) {
			matched = append(matched, book)
		}
	}

	sortBooks(matched, filter.OrderBy)
	total := len(matched)

	if filter.Limit > 0 {
		start := filter.Offset
		if start > total {
			start = total
		}
		end := start + filter.Limit
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}

	return matched, total, nil
}

// Update implements the BookStore interface
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if _, ok := m.Books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	if ok := m.referencesExist(book); !ok {
		return store.ErrInvalidEntity
	}
	m.Books[book.ID] = book
	return nil
}

// Delete implements the BookStore interface
func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.Books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(m.Books, id)
	return nil
}

func (m *MockBookStore) referencesExist(book *domain.Book) bool {
	if m.AuthorsRef != nil {
		if _, ok := m.AuthorsRef.Authors[book.AuthorID]; !ok {
			return false
		}
	}
	if m.CatsRef != nil {
		if _, ok := m.CatsRef.Categories[book.CategoryID]; !ok {
			return false
		}
	}
	return true
}

func (m *MockBookStore) matches(book *domain.Book, filter store.BookFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(book.Title), needle) &&
			!strings.Contains(strings.ToLower(book.Description), needle) {
			return false
		}
	}
	if filter.AuthorName != "" && m.AuthorsRef != nil {
		author, ok := m.AuthorsRef.Authors[book.AuthorID]
		if !ok || author.Name != filter.AuthorName {
			return false
		}
	}
	if filter.CategoryName != "" && m.CatsRef != nil {
		category, ok := m.CatsRef.Categories[book.CategoryID]
		if !ok || category.Name != filter.CategoryName {
			return false
		}
	}
	return true
}

func sortBooks(books []*domain.Book, orderBy string) {
	desc := strings.HasPrefix(orderBy, "-")
	field := strings.TrimPrefix(orderBy, "-")

	less := func(i, j int) bool {
		switch field {
		case "title":
			return books[i].Title < books[j].Title
		case "price":
			return books[i].Price < books[j].Price
		case "publication_date":
			return books[i].PublicationDate.Before(books[j].PublicationDate)
		default:
			return books[i].CreatedAt.Before(books[j].CreatedAt)
		}
	}

	if desc {
		sort.SliceStable(books, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(books, less)
	}
}
