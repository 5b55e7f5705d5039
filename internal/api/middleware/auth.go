package middleware

import (
	"context"
	"net/http"

	"github.com/labcentral/facility-service/internal/api/handlers"
)

type contextKey string

// RoleContextKey is the context key the caller role is stored under
const RoleContextKey contextKey = "role"

const (
	// RoleAdmin marks lab administrators
	RoleAdmin = "ADMIN"
	// RoleFaculty marks regular researchers
	RoleFaculty = "FACULTY"
)

const (
	msgMissingRole = "X-User-Role header is required"
	msgAdminOnly   = "admin role required"
)

// Auth extracts the caller role from the X-User-Role header and stores
// it in the request context. Requests without the header are rejected.
//
// The role is trusted as-is; authentication itself lives at the API
// gateway in front of this service.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.Header.Get("X-User-Role")
		if role == "" {
			handlers.RespondUnauthorized(w, msgMissingRole)
			return
		}

		ctx := context.WithValue(r.Context(), RoleContextKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose caller role is not ADMIN.
// Must be mounted after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromContext(r.Context()) != RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RoleFromContext returns the caller role stored by Auth, or "" if absent
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(RoleContextKey).(string)
	return role
}
