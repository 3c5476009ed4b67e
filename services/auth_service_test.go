package services

import (
	"testing"
	"time"

	"github.com/avira1987/remix-of-dxb-dubi/lib"
	"github.com/avira1987/remix-of-dxb-dubi/structs"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	return &AuthService{
		cfg: &structs.Config{
			Auth: &structs.AuthConfig{
				AccessTokenSecret:  "test-access-secret",
				AccessTokenExpiry:  15 * time.Minute,
				RefreshTokenSecret: "test-refresh-secret",
				RefreshTokenExpiry: 7 * 24 * time.Hour,
			},
		},
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	as := newTestAuthService()

	hash, err := as.HashPassword("correct horse battery staple", DefaultParams)
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$")

	ok, err := as.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = as.VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	as := newTestAuthService()

	a, err := as.HashPassword("same password", DefaultParams)
	require.NoError(t, err)
	b, err := as.HashPassword("same password", DefaultParams)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	as := newTestAuthService()

	_, err := as.VerifyPassword("whatever", "not-a-hash")
	assert.Error(t, err)
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	as := newTestAuthService()
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}

	token, err := as.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := lib.ParseToken(token, as.cfg.Auth.AccessTokenSecret)
	require.NoError(t, err)

	assert.Equal(t, user.Id, claims.Sub)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(as.cfg.Auth.AccessTokenExpiry), claims.Exp, 5*time.Second)
}

func TestGenerateAccessToken_CarriesNoRoleClaim(t *testing.T) {
	as := newTestAuthService()
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}

	token, err := as.GenerateAccessToken(user)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	_, hasRole := claims["role"]
	assert.False(t, hasRole, "roles live in user_roles, never inside the token")
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	as := newTestAuthService()
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}

	token, err := as.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = lib.ParseToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseToken_RejectsRefreshTokenAsAccessToken(t *testing.T) {
	as := newTestAuthService()
	user := &tables.User{Id: uuid.New(), Email: "admin@dxbdubi.com"}

	refresh, err := as.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = lib.ParseToken(refresh, as.cfg.Auth.AccessTokenSecret)
	assert.Error(t, err)
}
