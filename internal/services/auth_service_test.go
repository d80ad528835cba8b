package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/services"
	"taskboard/internal/storage/memory"
)

const testSigningKey = "test-signing-key"

func newAuthService(users *memory.UserRepository, ttl time.Duration) services.AuthService {
	return services.NewAuthService(zerolog.Nop(), users, "taskboard-test", []byte(testSigningKey), ttl)
}

func TestAuthService_RegisterLoginVerify(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := newAuthService(users, time.Hour)

	registered, err := auth.Register(ctx, services.RegisterParams{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	assert.Equal(t, "alice", registered.User.Username)
	assert.Equal(t, "a@x.com", registered.User.Email)
	assert.False(t, registered.User.ID.IsZero())

	loggedIn, err := auth.Login(ctx, services.LoginParams{
		Username: "alice",
		Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	verified, err := auth.VerifyToken(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, verified.ID)
	assert.Equal(t, "alice", verified.Username)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := newAuthService(users, time.Hour)

	_, err := auth.Register(ctx, services.RegisterParams{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		params  services.RegisterParams
		wantErr error
	}{
		{
			name: "same username, different email",
			params: services.RegisterParams{
				Username: "alice",
				Email:    "other@x.com",
				Password: "pw123456",
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name: "same email, different username",
			params: services.RegisterParams{
				Username: "bob",
				Email:    "a@x.com",
				Password: "pw123456",
			},
			wantErr: services.ErrEmailTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := newAuthService(users, time.Hour)

	_, err := auth.Register(ctx, services.RegisterParams{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, services.LoginParams{Username: "nobody", Password: "pw123456"})
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = auth.Login(ctx, services.LoginParams{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, services.ErrUserPasswordMismatch)
}

func TestAuthService_VerifyTokenFailures(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := newAuthService(users, time.Hour)

	_, err := auth.VerifyToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	t.Run("expired token", func(t *testing.T) {
		expiring := newAuthService(users, -time.Minute)
		result, err := expiring.Register(ctx, services.RegisterParams{
			Username: "bob",
			Email:    "b@x.com",
			Password: "pw123456",
		})
		require.NoError(t, err)

		_, err = auth.VerifyToken(ctx, result.Token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		result, err := auth.Register(ctx, services.RegisterParams{
			Username: "carol",
			Email:    "c@x.com",
			Password: "pw123456",
		})
		require.NoError(t, err)

		// Same signing key, but a store the user was never written to.
		other := newAuthService(memory.NewUserRepository(), time.Hour)
		_, err = other.VerifyToken(ctx, result.Token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		result, err := auth.Register(ctx, services.RegisterParams{
			Username: "dave",
			Email:    "d@x.com",
			Password: "pw123456",
		})
		require.NoError(t, err)

		forged := services.NewAuthService(zerolog.Nop(), users, "taskboard-test", []byte("another-key"), time.Hour)
		_, err = forged.VerifyToken(ctx, result.Token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
