package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// AuthMiddleware validates bearer tokens and attaches the claims to the
// request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Require rejects requests without a valid bearer token.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, fmt.Errorf("%w: missing bearer token", errs.ErrUnauthorized))
			return
		}
		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims)))
	})
}

// RequireAdmin additionally rejects non-admin tokens.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil || claims.Role != domain.UserRoleAdmin {
			respondError(w, fmt.Errorf("%w: admin access required", errs.ErrUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// ClaimsFromContext extracts the authenticated claims set by Require.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", errs.ErrUnauthorized)
	}
	return claims, nil
}
