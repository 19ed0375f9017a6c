package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iskolar_backend/internals/configs"
	"iskolar_backend/internals/constants"
)

func TestCreateAccessToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	userID := uuid.New()
	signed, err := CreateAccessToken(userID, constants.RoleScholar)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, constants.RoleScholar, claims["role"])
	assert.NotNil(t, claims["exp"])
	assert.NotNil(t, claims["iat"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	prev := configs.JWTRefreshSecret
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() { configs.JWTRefreshSecret = prev })

	userID := uuid.New()
	signed, err := CreateRefreshToken(userID)
	require.NoError(t, err)

	got, err := ParseRefreshToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	prevAccess, prevRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = prevAccess
		configs.JWTRefreshSecret = prevRefresh
	})

	// signed with the access secret and missing the typ marker
	access, err := CreateAccessToken(uuid.New(), constants.RoleScholar)
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	prev := configs.JWTRefreshSecret
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() { configs.JWTRefreshSecret = prev })

	_, err := ParseRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestCreateAccessTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := CreateAccessToken(uuid.New(), constants.RoleAdmin)
	assert.Error(t, err)
}
