package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload. Subject holds the user id; Role is
// informational only, authorization always reloads the role from storage.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	GenerateAccessToken(userID string, role string) (string, error)

	// ValidateToken rejects bad signatures, unexpected algorithms and expired tokens.
	ValidateToken(tokenString string) (*Claims, error)
}
