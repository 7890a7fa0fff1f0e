package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	categoryID := uuid.New()
	published := time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		title      string
		price      float64
		date       time.Time
		authorID   uuid.UUID
		categoryID uuid.UUID
		wantErr    error
	}{
		{
			name:       "valid book",
			title:      "The Hobbit",
			price:      12.99,
			date:       published,
			authorID:   authorID,
			categoryID: categoryID,
		},
		{
			name:       "empty title",
			title:      "",
			price:      12.99,
			date:       published,
			authorID:   authorID,
			categoryID: categoryID,
			wantErr:    ErrEmptyBookTitle,
		},
		{
			name:       "zero price",
			title:      "The Hobbit",
			price:      0,
			date:       published,
			authorID:   authorID,
			categoryID: categoryID,
			wantErr:    ErrNonPositivePrice,
		},
		{
			name:       "negative price",
			title:      "The Hobbit",
			price:      -1,
			date:       published,
			authorID:   authorID,
			categoryID: categoryID,
			wantErr:    ErrNonPositivePrice,
		},
		{
			name:       "missing publication date",
			title:      "The Hobbit",
			price:      12.99,
			authorID:   authorID,
			categoryID: categoryID,
			wantErr:    ErrEmptyPublicationDate,
		},
		{
			name:       "missing author reference",
			title:      "The Hobbit",
			price:      12.99,
			date:       published,
			categoryID: categoryID,
			wantErr:    ErrEmptyBookAuthorID,
		},
		{
			name:     "missing category reference",
			title:    "The Hobbit",
			price:    12.99,
			date:     published,
			authorID: authorID,
			wantErr:  ErrEmptyBookCategoryID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			book, err := NewBook(tt.title, "a description", tt.price, tt.date, tt.authorID, tt.categoryID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, book)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, book.ID)
			assert.Equal(t, tt.title, book.Title)
		})
	}
}

func TestBookTitleLength(t *testing.T) {
	t.Parallel()

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}

	_, err := NewBook(string(long), "", 1, time.Now(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBookTitleTooLong)
}
