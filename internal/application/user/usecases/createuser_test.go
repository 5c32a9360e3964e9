package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/domain/user"
	"tickethub/internal/shared/errors"
)

func TestCreateUserUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(3)
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, nopLogger{})
	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam Carter",
		Email:    "Sam.Carter@Example.com",
		Password: "s3cret-password",
		Role:     "SUPPORT",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "SUPPORT", result.Role)
	assert.Equal(t, "sam.carter@example.com", result.Email, "emails are stored lowercase")
	assert.Equal(t, "hashed:s3cret-password", saved.PasswordHash(), "plaintext is never stored")
}

func TestCreateUserUseCase_Execute_InvalidRole(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, nopLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam Carter",
		Email:    "sam@example.com",
		Password: "s3cret-password",
		Role:     "ADMIN",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "invalid role: ADMIN")
}

func TestCreateUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, nopLogger{})
	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam Carter",
		Email:    "sam@example.com",
		Password: "short",
		Role:     "USER",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "password must be at least 8 characters")
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	t.Run("caught by existence check", func(t *testing.T) {
		repo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
		}

		uc := NewCreateUserUseCase(repo, &mockHasher{}, nopLogger{})
		_, err := uc.Execute(context.Background(), CreateUserCommand{
			Name:     "Sam Carter",
			Email:    "sam@example.com",
			Password: "s3cret-password",
			Role:     "USER",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email already registered")
	})

	t.Run("caught by unique index on save", func(t *testing.T) {
		repo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return fmt.Errorf("Error 1062 (23000): Duplicate entry 'sam@example.com' for key 'users.email'")
			},
		}

		uc := NewCreateUserUseCase(repo, &mockHasher{}, nopLogger{})
		_, err := uc.Execute(context.Background(), CreateUserCommand{
			Name:     "Sam Carter",
			Email:    "sam@example.com",
			Password: "s3cret-password",
			Role:     "USER",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "email already registered")
	})
}
