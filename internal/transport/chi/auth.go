package chi

import (
	"context"
	"net/http"
)

// userIDHeader carries the authenticated user, set by the proxy in front
// of this service.
const userIDHeader = "X-User-Id"

type userIDKey struct{}

// exemptPaths are routes that bypass user resolution (health, metrics).
var exemptPaths = map[string]struct{}{
	"/healthz": {},
	"/metrics": {},
}

// UserMiddleware resolves the requesting user from the X-User-Id header
// and stores it in the request context. Requests without a user are
// rejected.
func UserMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			userID := r.Header.Get(userIDHeader)
			if userID == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing user header")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userFromContext returns the authenticated user set by UserMiddleware.
func userFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey{}).(string); ok {
		return v
	}
	return ""
}
