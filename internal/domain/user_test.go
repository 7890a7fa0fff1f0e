package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "reader1",
			email:    "reader@example.com",
			password: "correct-horse",
			wantErr:  nil,
		},
		{
			name:     "empty username",
			username: "",
			email:    "reader@example.com",
			password: "correct-horse",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty email",
			username: "reader1",
			email:    "",
			password: "correct-horse",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			username: "reader1",
			email:    "not-an-email",
			password: "correct-horse",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "reader1",
			email:    "reader@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("reader1", "reader@example.com", "correct-horse")
	require.NoError(t, err)

	// A user loaded from the store has only a hash.
	user.Password = ""
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func TestValidEmailFormat(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "first.last@sub.domain.org"}
	invalid := []string{"", "@b.co", "a@", "a@b", "a@.co", "a@b."}

	for _, email := range valid {
		assert.True(t, validEmailFormat(email), email)
	}
	for _, email := range invalid {
		assert.False(t, validEmailFormat(email), email)
	}
}
