// File: internal/middleware/identity.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gramcare/sahayak/internal/services/user_services"
)

// AnonymousUser is the identity assigned when no credential is presented.
// Chat works without an account; the identity only scopes chat history.
const AnonymousUser = "anonymous"

// NewIdentityMiddleware resolves the caller's identity from an optional
// bearer token. The middleware never rejects a request: a missing or
// invalid token degrades to the anonymous identity.
func NewIdentityMiddleware(authService *user_services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := AnonymousUser
			if token := bearerToken(r); token != "" {
				if id, err := authService.ValidateJWTToken(token); err == nil {
					userID = fmt.Sprintf("user_%d", id)
				}
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewJWTMiddleware enforces a valid bearer token. Used for the account
// endpoints; chat routes use the advisory identity middleware instead.
func NewJWTMiddleware(authService *user_services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			id, err := authService.ValidateJWTToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, fmt.Sprintf("user_%d", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom returns the caller identity set by the middleware, defaulting
// to anonymous for handlers mounted without it.
func UserIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok && id != "" {
		return id
	}
	return AnonymousUser
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
