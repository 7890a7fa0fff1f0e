package postgres

import (
	"testing"

	"github.com/quillby/bookstore-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestBuildBookWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    store.BookFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty filter",
			filter:    store.BookFilter{},
			wantWhere: "",
			wantArgs:  []any{},
		},
		{
			name:      "search only",
			filter:    store.BookFilter{Search: "dragons"},
			wantWhere: " WHERE (b.title ILIKE $1 OR b.description ILIKE $1)",
			wantArgs:  []any{"%dragons%"},
		},
		{
			name:      "author name only",
			filter:    store.BookFilter{AuthorName: "Ursula K. Le Guin"},
			wantWhere: " WHERE a.name = $1",
			wantArgs:  []any{"Ursula K. Le Guin"},
		},
		{
			name: "all conditions",
			filter: store.BookFilter{
				Search:       "sea",
				AuthorName:   "Ursula K. Le Guin",
				CategoryName: "Fantasy",
			},
			wantWhere: " WHERE (b.title ILIKE $1 OR b.description ILIKE $1)" +
				" AND a.name = $2 AND c.name = $3",
			wantArgs: []any{"%sea%", "Ursula K. Le Guin", "Fantasy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			where, args := buildBookWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBookOrderClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		orderBy string
		want    string
	}{
		{"", " ORDER BY b.created_at ASC, b.id"},
		{"title", " ORDER BY b.title ASC, b.id"},
		{"-price", " ORDER BY b.price DESC, b.id"},
		{"publication_date", " ORDER BY b.publication_date ASC, b.id"},
		// Unknown fields must not reach the SQL text.
		{"id; DROP TABLE books", " ORDER BY b.created_at ASC, b.id"},
		{"-unknown", " ORDER BY b.created_at ASC, b.id"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bookOrderClause(tt.orderBy), tt.orderBy)
	}
}
