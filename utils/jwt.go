package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints an HS256 bearer token carrying the username as subject.
func GenerateToken(username, secret string, ttl time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
