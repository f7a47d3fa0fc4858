// Package auth verifies bearer tokens issued by the external identity
// service. This backend never mints credentials; it only checks the
// shared-secret signature and extracts the caller's identity and role.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"nagarsetu/internal/shared/authorization"
)

type Claims struct {
	UserID   uint                   `json:"user_id"`
	Name     string                 `json:"name"`
	Role     authorization.UserRole `json:"role"`
	Verified bool                   `json:"verified"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.UserID == 0 {
		return nil, fmt.Errorf("token missing user ID")
	}

	return claims, nil
}
