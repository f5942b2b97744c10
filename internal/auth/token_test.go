package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("64b7f0c2a1b2c3d4e5f60718", "a@b.test", RoleManager)
	require.NoError(t, err)

	caller, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", caller.UserID)
	assert.Equal(t, "a@b.test", caller.Email)
	assert.Equal(t, RoleManager, caller.Role)
	assert.True(t, caller.IsAuthenticated())
	assert.False(t, caller.IsAdmin())
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Issue("64b7f0c2a1b2c3d4e5f60718", "a@b.test", RoleUser)
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.Issue("64b7f0c2a1b2c3d4e5f60718", "a@b.test", RoleUser)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_NormalizesRoleClaim(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:   "64b7f0c2a1b2c3d4e5f60718",
		Role: " Admin ",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	caller, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, caller.Role)
	assert.True(t, caller.IsAdmin())
}

func TestTokenManager_RejectsUnknownRole(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:   "64b7f0c2a1b2c3d4e5f60718",
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("STAFF")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, role)

	_, ok = ParseRole("")
	assert.False(t, ok)

	assert.True(t, RoleManager.In(ManagementRoles...))
	assert.False(t, RoleUser.In(ManagementRoles...))
}

func TestAnonymousCaller(t *testing.T) {
	c := Anonymous()
	assert.False(t, c.IsAuthenticated())
	assert.False(t, c.IsAdmin())
}
