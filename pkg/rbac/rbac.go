// Package rbac provides role-based route protection. It must run after the
// auth middleware; a request without a resolved user is always denied.
package rbac

import (
	"net/http"

	"github.com/artcocktail/artcocktail/pkg/middleware"
	"github.com/artcocktail/artcocktail/pkg/response"
)

// RequireRole allows the request through only when the authenticated user
// holds one of the given roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := middleware.UserFromCtx(r.Context())
			if !ok || !allowed[user.Role] {
				response.Forbidden(w, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates admin-only catalog and order operations.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole("admin")(next)
}
