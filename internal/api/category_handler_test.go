package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillby/bookstore-api/internal/api"
	"github.com/quillby/bookstore-api/internal/api/shared"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/mocks"
)

func newCategoryRouter(categories *mocks.MockCategoryStore) *chi.Mux {
	handler := api.NewCategoryHandler(categories, nil)

	router := chi.NewRouter()
	router.Get("/api/categories", handler.List)
	router.Post("/api/categories", handler.Create)
	router.Get("/api/categories/{id}", handler.Get)
	router.Put("/api/categories/{id}", handler.Update)
	router.Delete("/api/categories/{id}", handler.Delete)
	return router
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	categories := mocks.NewMockCategoryStore()
	router := newCategoryRouter(categories)

	rec := serve(router, http.MethodPost, "/api/categories", `{"name":"Science Fiction"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var category domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
	assert.Equal(t, "Science Fiction", category.Name)

	rec = serve(router, http.MethodGet, "/api/categories/"+category.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPut, "/api/categories/"+category.ID.String(),
		`{"name":"Speculative Fiction"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := categories.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Speculative Fiction", stored.Name)

	rec = serve(router, http.MethodDelete, "/api/categories/"+category.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodGet, "/api/categories/"+category.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryCreateValidation(t *testing.T) {
	t.Parallel()

	router := newCategoryRouter(mocks.NewMockCategoryStore())

	rec := serve(router, http.MethodPost, "/api/categories", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
}

func TestCategoryList(t *testing.T) {
	t.Parallel()

	categories := mocks.NewMockCategoryStore()
	router := newCategoryRouter(categories)

	for _, name := range []string{"Poetry", "Essays", "Novels"} {
		category, err := domain.NewCategory(name)
		require.NoError(t, err)
		require.NoError(t, categories.Create(context.Background(), category))
	}

	rec := serve(router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []*domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "Essays", list[0].Name)
	assert.Equal(t, "Novels", list[1].Name)
	assert.Equal(t, "Poetry", list[2].Name)
}

func TestCategoryGetUnknown(t *testing.T) {
	t.Parallel()

	router := newCategoryRouter(mocks.NewMockCategoryStore())

	rec := serve(router, http.MethodGet, "/api/categories/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
