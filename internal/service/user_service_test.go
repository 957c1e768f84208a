package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/service/auth"
	"github.com/campusqa/campusqa-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@campus.edu",
		HashedPassword: string(hashed),
	}

	t.Run("success", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByEmail", ctx, user.Email).Return(user, nil)

		svc := NewUserService(
			userStore, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
			nil, testLogger())

		got, err := svc.Authenticate(ctx, user.Email, "correct-password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		userStore.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByEmail", ctx, "nobody@campus.edu").
			Return(nil, store.ErrUserNotFound)

		svc := NewUserService(
			userStore, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
			nil, testLogger())

		got, err := svc.Authenticate(ctx, "nobody@campus.edu", "correct-password")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetByEmail", ctx, user.Email).Return(user, nil)

		svc := NewUserService(
			userStore, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
			nil, testLogger())

		got, err := svc.Authenticate(ctx, user.Email, "wrong-password")
		assert.Nil(t, got)

		// Unknown email and bad password must be indistinguishable.
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()

	userStore := new(MockUserStore)
	svc := NewUserService(
		userStore, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
		nil, testLogger())

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"short password", "alice", "alice@campus.edu", "abc", domain.ErrPasswordTooShort},
		{"short username", "a", "alice@campus.edu", "password123", domain.ErrUsernameTooShort},
		{"bad email", "alice", "not-an-email", "password123", domain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Register(ctx, tt.username, tt.email, tt.password, "", "")
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Invalid input never reaches the store.
	userStore.AssertNotCalled(t, "Create")
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userStore := new(MockUserStore)
	userStore.On("GetByID", ctx, userID).Return(nil, store.ErrUserNotFound)

	svc := NewUserService(
		userStore, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(),
		nil, testLogger())

	user, err := svc.GetUser(ctx, userID)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
