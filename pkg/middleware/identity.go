package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akaul/fairsplit/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UserIDKey is the context key for the caller's identity
	UserIDKey ContextKey = "user_id"

	// DefaultUserID is assumed when no identity header is present, so the
	// API stays usable in local development without an auth proxy.
	DefaultUserID = "local-dev"
)

// Identity resolves the caller from the X-User-ID header. Authentication
// itself is an external collaborator (the deployment fronts this API with an
// auth proxy that validates the session and sets the header); this middleware
// only carries the resolved identity into the request context.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if userID == "" {
			userID = DefaultUserID
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects requests whose identity is missing from the context
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			response.Unauthorized(w, "Caller identity required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the caller identity from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
