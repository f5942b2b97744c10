package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/internal/auth"
	"poi-be-svc/pkg/apperror"
)

func TestAuthService_RegisterLoginProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewAuthService(env.userRepo, tokens, env.log)

	registered, err := svc.Register(ctx, &RegisterRequest{Email: " Jane@Example.com ", Password: "secret1", Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", registered.User.Email)
	assert.Equal(t, "user", registered.User.Role)

	caller, err := tokens.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, caller.UserID)
	assert.Equal(t, auth.RoleUser, caller.Role)

	_, err = svc.Register(ctx, &RegisterRequest{Email: "jane@example.com", Password: "secret1", Name: "Again"})
	assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))

	loggedIn, err := svc.Login(ctx, &LoginRequest{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))
	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.Equal(t, apperror.ValidationFailed, apperror.KindOf(err))

	profile, err := NewUserService(env.userRepo, env.log).GetProfile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
}
