package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillby/bookstore-api/internal/api"
	"github.com/quillby/bookstore-api/internal/domain"
	"github.com/quillby/bookstore-api/internal/service/auth"
	"github.com/quillby/bookstore-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"book not found", store.ErrBookNotFound, http.StatusNotFound},
		{"author not found", store.ErrAuthorNotFound, http.StatusNotFound},
		{"invalid reference", store.ErrInvalidEntity, http.StatusBadRequest},
		{"duplicate", store.ErrUsernameExists, http.StatusBadRequest},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusBadRequest},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Unable to log in with provided credentials"},
		{"book not found", store.ErrBookNotFound, "Book not found"},
		{"invalid reference", store.ErrInvalidEntity, "Referenced author or category not found"},
		{
			name: "internal detail never leaks",
			err:  errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`),
			want: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}
}
