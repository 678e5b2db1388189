package auth

import (
	"errors"
	"fmt"
	"time"

	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity asserted by the identity provider.
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService verifies HS256 bearer tokens. Issuing tokens belongs to the
// identity provider; GenerateToken exists for tooling and tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) GenerateToken(identity Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: identity.UserID,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns the identity it carries.
// Any failure wraps ErrInvalidToken.
func (s *TokenService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !models.IsUUID(claims.UserID) {
		return nil, fmt.Errorf("%w: user_id is not a uuid", ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return &Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
