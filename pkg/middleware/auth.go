// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, request logging, panic recovery, CORS and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/artcocktail/artcocktail/pkg/auth"
	"github.com/artcocktail/artcocktail/pkg/response"
)

// AuthUser is the resolved identity attached to the request context after a
// token checks out.
type AuthUser struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

// UserLoader resolves a token's user ID to the current user row. Returning an
// error means the user no longer exists and the token is rejected.
type UserLoader func(id uint) (AuthUser, error)

type userCtxKey struct{}

// Auth verifies the Authorization: Bearer header, loads the user row, and
// stores the resolved AuthUser in the request context. Requests with a
// missing, malformed or expired token are rejected with 401.
func Auth(load UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Unauthorized(w, "No token provided")
				return
			}

			claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			user, err := load(claims.UserID)
			if err != nil {
				response.Unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromCtx returns the authenticated user stored by Auth.
func UserFromCtx(ctx context.Context) (AuthUser, bool) {
	u, ok := ctx.Value(userCtxKey{}).(AuthUser)
	return u, ok
}

// WithUser stores an AuthUser in ctx. Used by handler tests.
func WithUser(ctx context.Context, u AuthUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}
