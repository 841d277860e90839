package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/forgelab/brandforge-api/internal/api/shared"
	"github.com/forgelab/brandforge-api/internal/redact"
	"github.com/forgelab/brandforge-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes. When no validator
// is configured (no JWT secret set), authentication is skipped entirely so
// open local deployments keep working.
type AuthMiddleware struct {
	validator auth.TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware. A nil validator disables
// authentication.
func NewAuthMiddleware(validator auth.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Enabled reports whether requests will actually be authenticated.
func (m *AuthMiddleware) Enabled() bool {
	return m.validator != nil
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the token subject to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	if m.validator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.validator.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case auth.ErrInvalidToken, auth.ErrMissingToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.SubjectContextKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
