// Package auth validates the bearer tokens that gate the generation
// endpoints. There is no user store and no token issuance here: deployments
// that enable auth mint HMAC-signed tokens out of band and configure the
// shared secret; open local deployments leave the secret empty and skip
// authentication entirely.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forgelab/brandforge-api/internal/config"
)

// Claims carries the validated identity of a request.
type Claims struct {
	// Subject identifies the token holder.
	Subject string `json:"sub,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// TokenValidator validates bearer tokens for the API middleware.
type TokenValidator interface {
	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// hmacJWTService validates JWTs using HMAC-SHA256 signing.
type hmacJWTService struct {
	signingKey []byte
	clockSkew  time.Duration
	timeFunc   func() time.Time // injectable for testing
}

var _ TokenValidator = (*hmacJWTService)(nil)

// NewJWTService creates a token validator from the auth configuration.
func NewJWTService(cfg config.AuthConfig) (TokenValidator, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacJWTService{
		signingKey: []byte(cfg.JWTSecret),
		clockSkew:  2 * time.Minute,
		timeFunc:   time.Now,
	}, nil
}

// ValidateToken validates a JWT and returns its claims if valid.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		Subject: registered.Subject,
		ID:      registered.ID,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}
