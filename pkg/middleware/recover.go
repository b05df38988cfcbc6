package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/response"
)

// Recovery catches panics from downstream handlers, logs the stack trace and
// answers 500. Mount it outside the auth and routing layers.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Internal(w, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
