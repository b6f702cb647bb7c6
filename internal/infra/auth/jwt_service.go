package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. It issues access tokens only; there is no refresh flow.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// tokenClaims is the wire shape of the access token payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: cfg.Auth.AccessTokenTTL,
	}, nil
}

// GenerateAccessToken creates a role-carrying access token for a user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parsed := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errors.New("token subject is not a valid user id")
	}

	role := entity.Role(parsed.Role)
	if !role.IsValid() {
		return nil, errors.New("token carries an unknown role")
	}

	return &service.Claims{
		UserID:           userID,
		Role:             role,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}
