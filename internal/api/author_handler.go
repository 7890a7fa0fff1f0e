package api

import (
	"log/slog"
	"net/http"

	"github.com/quillby/bookstore-api/internal/api/shared"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/platform/logger"
	"github.com/quillby/bookstore-api/internal/store"
)

// AuthorHandler handles author CRUD requests.
type AuthorHandler struct {
	authors store.AuthorStore
	logger  *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(authors store.AuthorStore, log *slog.Logger) *AuthorHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthorHandler{
		authors: authors,
		logger:  log.With(slog.String("component", "author_handler")),
	}
}

// List handles GET /authors requests.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list authors")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, authors)
}

// Get handles GET /authors/{id} requests.
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authors.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, author)
}

// Create handles POST /authors requests.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AuthorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		if fields := shared.FieldErrors(err); fields != nil {
			shared.RespondWithFieldErrors(w, r, fields)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	author, err := domain.NewAuthor(req.Name, req.Biography)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authors.Create(r.Context(), author); err != nil {
		HandleAPIError(w, r, err, "Failed to create author")
		return
	}

	log.Info("author created", slog.String("author_id", author.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, author)
}

// Update handles PUT /authors/{id} requests.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AuthorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		if fields := shared.FieldErrors(err); fields != nil {
			shared.RespondWithFieldErrors(w, r, fields)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	author, err := h.authors.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author.Name = req.Name
	author.Biography = req.Biography

	if err := h.authors.Update(r.Context(), author); err != nil {
		HandleAPIError(w, r, err, "Failed to update author")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, author)
}

// Delete handles DELETE /authors/{id} requests.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.authors.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
