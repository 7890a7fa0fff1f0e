package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillby/bookstore-api/internal/domain"
)

func TestNewAuthor(t *testing.T) {
	t.Parallel()

	t.Run("valid author", func(t *testing.T) {
		t.Parallel()

		author, err := domain.NewAuthor("Ursula K. Le Guin", "Essayist and novelist.")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, author.ID)
		assert.Equal(t, "Ursula K. Le Guin", author.Name)
		assert.False(t, author.CreatedAt.IsZero())
	})

	t.Run("biography is optional", func(t *testing.T) {
		t.Parallel()

		author, err := domain.NewAuthor("Stanislaw Lem", "")
		require.NoError(t, err)
		assert.Empty(t, author.Biography)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewAuthor("", "bio")
		assert.ErrorIs(t, err, domain.ErrEmptyAuthorName)
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewAuthor(strings.Repeat("x", 101), "")
		assert.ErrorIs(t, err, domain.ErrAuthorNameTooLong)

		_, err = domain.NewAuthor(strings.Repeat("x", 100), "")
		assert.NoError(t, err)
	})
}

func TestNewCategory(t *testing.T) {
	t.Parallel()

	t.Run("valid category", func(t *testing.T) {
		t.Parallel()

		category, err := domain.NewCategory("Science Fiction")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, category.ID)
		assert.Equal(t, "Science Fiction", category.Name)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewCategory("")
		assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewCategory(strings.Repeat("x", 101))
		assert.ErrorIs(t, err, domain.ErrCategoryNameTooLong)
	})
}
