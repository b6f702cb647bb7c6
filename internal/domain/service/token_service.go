package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sokoo/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token. The token's
// only job is to identify the caller and their role for route scoping; there
// is no refresh/session machinery.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a role-carrying access token for a user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
