package api

import (
	"log/slog"
	"net/http"

	"github.com/quillby/bookstore-api/internal/api/shared"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/platform/logger"
	"github.com/quillby/bookstore-api/internal/store"
)

// CategoryHandler handles category CRUD requests.
type CategoryHandler struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories store.CategoryStore, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}

	return &CategoryHandler{
		categories: categories,
		logger:     log.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /categories requests.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// Get handles GET /categories/{id} requests.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// Create handles POST /categories requests.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CategoryRequest
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

	category, err := domain.NewCategory(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categories.Create(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	log.Info("category created", slog.String("category_id", category.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// Update handles PUT /categories/{id} requests.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CategoryRequest
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

	category, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category.Name = req.Name

	if err := h.categories.Update(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// Delete handles DELETE /categories/{id} requests.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
