package usecases

import (
	"time"

	"videotube/pkg/config"
	apierrors "videotube/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func signToken(userID, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(token, secret string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, apierrors.Unauthorized("invalid or expired token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, apierrors.Unauthorized("invalid token claims")
	}
	return claims, nil
}

// SignAccessToken issues the short-lived token carried on every request.
func SignAccessToken(cfg config.AuthConfig, userID string) (string, error) {
	return signToken(userID, cfg.AccessSecret, cfg.AccessTTL)
}

// SignRefreshToken issues the long-lived token stored on the user record.
func SignRefreshToken(cfg config.AuthConfig, userID string) (string, error) {
	return signToken(userID, cfg.RefreshSecret, cfg.RefreshTTL)
}

// ParseAccessToken resolves the viewer identity; the auth middleware uses it.
func ParseAccessToken(cfg config.AuthConfig, token string) (*Claims, error) {
	return parseToken(token, cfg.AccessSecret)
}

// ParseRefreshToken validates a refresh token during rotation.
func ParseRefreshToken(cfg config.AuthConfig, token string) (*Claims, error) {
	return parseToken(token, cfg.RefreshSecret)
}
