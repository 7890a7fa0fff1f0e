package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func newAuthorRouter(authors *mocks.MockAuthorStore) *chi.Mux {
	handler := api.NewAuthorHandler(authors, nil)

	router := chi.NewRouter()
	router.Get("/api/authors", handler.List)
	router.Post("/api/authors", handler.Create)
	router.Get("/api/authors/{id}", handler.Get)
	router.Put("/api/authors/{id}", handler.Update)
	router.Delete("/api/authors/{id}", handler.Delete)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthorCreate(t *testing.T) {
	t.Parallel()

	authors := mocks.NewMockAuthorStore()
	router := newAuthorRouter(authors)

	rec := serve(router, http.MethodPost, "/api/authors",
		`{"name":"Ursula K. Le Guin","biography":"Essayist and novelist."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var author domain.Author
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &author))
	assert.Equal(t, "Ursula K. Le Guin", author.Name)
	assert.Equal(t, "Essayist and novelist.", author.Biography)
	assert.Len(t, authors.Authors, 1)

	t.Run("missing name", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/authors", `{"biography":"No name."}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "name")
	})

	t.Run("name too long", func(t *testing.T) {
		payload := `{"name":"` + strings.Repeat("x", 101) + `"}`
		rec := serve(router, http.MethodPost, "/api/authors", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthorGetAndList(t *testing.T) {
	t.Parallel()

	authors := mocks.NewMockAuthorStore()
	router := newAuthorRouter(authors)

	leGuin, err := domain.NewAuthor("Ursula K. Le Guin", "")
	require.NoError(t, err)
	require.NoError(t, authors.Create(context.Background(), leGuin))
	lem, err := domain.NewAuthor("Stanislaw Lem", "")
	require.NoError(t, err)
	require.NoError(t, authors.Create(context.Background(), lem))

	t.Run("get", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/authors/"+leGuin.ID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var author domain.Author
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &author))
		assert.Equal(t, leGuin.ID, author.ID)
	})

	t.Run("get unknown id", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/authors/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("get malformed id", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/authors/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list sorted by name", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/authors", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list []*domain.Author
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "Stanislaw Lem", list[0].Name)
		assert.Equal(t, "Ursula K. Le Guin", list[1].Name)
	})
}

func TestAuthorUpdate(t *testing.T) {
	t.Parallel()

	authors := mocks.NewMockAuthorStore()
	router := newAuthorRouter(authors)

	author, err := domain.NewAuthor("Ursula Le Guin", "")
	require.NoError(t, err)
	require.NoError(t, authors.Create(context.Background(), author))

	rec := serve(router, http.MethodPut, "/api/authors/"+author.ID.String(),
		`{"name":"Ursula K. Le Guin","biography":"Updated."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := authors.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", stored.Name)
	assert.Equal(t, "Updated.", stored.Biography)

	t.Run("unknown id", func(t *testing.T) {
		rec := serve(router, http.MethodPut, "/api/authors/"+uuid.NewString(),
			`{"name":"Nobody"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthorDelete(t *testing.T) {
	t.Parallel()

	authors := mocks.NewMockAuthorStore()
	router := newAuthorRouter(authors)

	author, err := domain.NewAuthor("Ursula K. Le Guin", "")
	require.NoError(t, err)
	require.NoError(t, authors.Create(context.Background(), author))

	rec := serve(router, http.MethodDelete, "/api/authors/"+author.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodGet, "/api/authors/"+author.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
