package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quillby/bookstore-api/internal/api/shared"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/platform/logger"
	"github.com/quillby/bookstore-api/internal/store"
)

// Pagination bounds for the book listing.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// BookHandler handles book CRUD and listing requests.
type BookHandler struct {
	books      store.BookStore
	authors    store.AuthorStore
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewBookHandler creates a new BookHandler. The author and category stores
// feed the aggregate catalog endpoint.
func NewBookHandler(
	books store.BookStore,
	authors store.AuthorStore,
	categories store.CategoryStore,
	log *slog.Logger,
) *BookHandler {
	if log == nil {
		log = slog.Default()
	}

	return &BookHandler{
		books:      books,
		authors:    authors,
		categories: categories,
		logger:     log.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /books requests with pagination, search, filtering and
// ordering. Search applies before pagination; page_size is capped at 100.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r.URL.Query())
	filter := parseBookFilter(r.URL.Query())
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	books, total, err := h.books.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  booksToResponses(books),
	})
}

// Get handles GET /books/{id} requests.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// Create handles POST /books requests.
// The full payload is validated before anything is persisted; a reference to
// an unknown author or category is reported as a field error.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := domain.NewBook(
		req.Title,
		req.Description,
		req.Price,
		mustParseDate(req.PublicationDate),
		uuid.MustParse(req.AuthorID),
		uuid.MustParse(req.CategoryID),
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.books.Create(r.Context(), book); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("book created",
		slog.String("book_id", book.ID.String()),
		slog.String("title", book.Title))
	shared.RespondWithJSON(w, r, http.StatusCreated, bookToResponse(book))
}

// Update handles PUT /books/{id} requests.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	book.Title = req.Title
	book.Description = req.Description
	book.Price = req.Price
	book.PublicationDate = mustParseDate(req.PublicationDate)
	book.AuthorID = uuid.MustParse(req.AuthorID)
	book.CategoryID = uuid.MustParse(req.CategoryID)

	if err := h.books.Update(r.Context(), book); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// Delete handles DELETE /books/{id} requests.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Catalog handles GET /books/list requests: the full author and category
// sets alongside the (searched/filtered/ordered, unpaginated) book set, for
// a UI that needs reference lists next to the data table.
func (h *BookHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	filter := parseBookFilter(r.URL.Query())

	books, _, err := h.books.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	authors, err := h.authors.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list authors")
		return
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookCatalogResponse{
		Authors:    authors,
		Categories: categories,
		Books:      booksToResponses(books),
	})
}

// decodeBookRequest decodes and validates a book payload, writing the error
// response itself when the payload is bad.
func (h *BookHandler) decodeBookRequest(w http.ResponseWriter, r *http.Request) (BookRequest, bool) {
	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		if fields := shared.FieldErrors(err); fields != nil {
			shared.RespondWithFieldErrors(w, r, fields)
			return req, false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return req, false
	}
	return req, true
}

// parsePagination reads page and page_size from the query, applying the
// default and the hard cap.
func parsePagination(query url.Values) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 0 {
		page = v
	}

	pageSize = defaultPageSize
	if v, err := strconv.Atoi(query.Get("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}

// parseBookFilter reads the search, name-filter and ordering parameters.
func parseBookFilter(query url.Values) store.BookFilter {
	return store.BookFilter{
		Search:       query.Get("search"),
		AuthorName:   query.Get("author__name"),
		CategoryName: query.Get("category__name"),
		OrderBy:      query.Get("ordering"),
	}
}

// mustParseDate converts an already-validated YYYY-MM-DD string. The
// validator's datetime tag guarantees it parses.
func mustParseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}
