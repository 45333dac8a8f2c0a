package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/culinarycode/backend/internal/types"
)

// TokenService validates bearer tokens issued by the Keycloak realm.
// Account management itself lives in Keycloak; this service only checks the
// signature and extracts the identity claims the API needs.
type TokenService struct {
	signingKey []byte
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(signingKey string) *TokenService {
	return &TokenService{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies a token, returning its identity claims.
func (s *TokenService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	username, _ := claims["preferred_username"].(string)
	email, _ := claims["email"].(string)

	return &types.TokenClaims{
		UserID:   sub,
		Username: username,
		Email:    email,
	}, nil
}
