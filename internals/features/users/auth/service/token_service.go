// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"iskolar_backend/internals/configs"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// CreateAccessToken signs the HS256 bearer token the auth middleware expects:
// user_id + role claims, 24h expiry.
func CreateAccessToken(userID uuid.UUID, role string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateRefreshToken signs the long-lived refresh token. It is signed with its
// own secret and carries a typ marker, so it can never pass as an access token
// at the auth middleware.
func CreateRefreshToken(userID uuid.UUID) (string, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return "", errors.New("JWT refresh secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRefreshToken validates signature, expiry and the typ marker, and
// returns the user the token was issued for.
func ParseRefreshToken(signed string) (uuid.UUID, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, errors.New("invalid refresh token")
	}

	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid refresh token")
	}
	return id, nil
}
