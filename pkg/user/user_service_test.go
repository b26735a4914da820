package user

import (
	"context"
	"testing"

	"github.com/eventra/eventra/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserServiceTest() *ServiceImpl {
	return NewUserService(NewStubUserRepo(), utils.SystemClock{})
}

func TestServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		service := setupUserServiceTest()

		registered, err := service.Register(ctx, "alice", "Alice", "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, registered.ID)
		assert.Equal(t, "alice", registered.Username)
		assert.NotEmpty(t, registered.PasswordHash)
		assert.NotContains(t, registered.PasswordHash, "s3cret")
	})

	t.Run("rejects empty username or password", func(t *testing.T) {
		service := setupUserServiceTest()

		_, err := service.Register(ctx, "  ", "Alice", "s3cret")
		assert.ErrorIs(t, err, ErrUserDataInvalid)

		_, err = service.Register(ctx, "alice", "Alice", "")
		assert.ErrorIs(t, err, ErrUserDataInvalid)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		service := setupUserServiceTest()

		_, err := service.Register(ctx, "alice", "Alice", "s3cret")
		require.NoError(t, err)

		_, err = service.Register(ctx, "alice", "Other Alice", "different")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestServiceImpl_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return the user", func(t *testing.T) {
		service := setupUserServiceTest()
		registered, err := service.Register(ctx, "alice", "Alice", "s3cret")
		require.NoError(t, err)

		authenticated, err := service.Authenticate(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, authenticated.ID)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		service := setupUserServiceTest()
		_, err := service.Register(ctx, "alice", "Alice", "s3cret")
		require.NoError(t, err)

		_, err = service.Authenticate(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user is invalid credentials, not not-found", func(t *testing.T) {
		service := setupUserServiceTest()

		_, err := service.Authenticate(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
