package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken issues an access token for the user and returns its expiry.
	GenerateToken(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
