package service

import (
	"context"
	"testing"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (IUserService, *security.TokenManager) {
	t.Helper()
	factory := newTestFactory(t)
	tokens := security.NewTokenManager("test-secret", time.Hour)
	return NewUserService(factory, tokens, nopLogger{}), tokens
}

func TestRegister(t *testing.T) {
	svc, tokens := newUserService(t)
	ctx := context.Background()

	lastName := "Doe"
	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "John",
		LastName: &lastName,
		Email:    "john@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userId, err := tokens.Decode(resp.Token)
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, "John", profile.Name)
	require.NotNil(t, profile.LastName)
	assert.Equal(t, "Doe", *profile.LastName)
	assert.Equal(t, "john@example.com", profile.Email)
	assert.False(t, profile.IsAdmin)

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Another",
			Email:    "john@example.com",
			Password: "different",
		})
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})
}

func TestLogin(t *testing.T) {
	svc, tokens := newUserService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "correct-pass",
	})
	require.NoError(t, err)
	registeredId, err := tokens.Decode(registered.Token)
	require.NoError(t, err)

	t.Run("Correct credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "correct-pass"})
		require.NoError(t, err)

		userId, err := tokens.Decode(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, registeredId, userId)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong-pass"})
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidToken))
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-pass"})
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidToken))
	})
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetProfile(context.Background(), 9999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListAll(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "U", Email: email, Password: "password"})
		require.NoError(t, err)
	}

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
