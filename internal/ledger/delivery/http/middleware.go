package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	userdomain "github.com/tair/laminate-stock/internal/user/domain"
	"github.com/tair/laminate-stock/pkg/auth"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// AuthMiddleware validates JWT token
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondAuthError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondAuthError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondAuthError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequirePermission ensures the authenticated user may access the given
// page. Permissions are re-read from the store on every request so a
// revocation takes effect without waiting for the token to expire.
func RequirePermission(users userdomain.UserRepository, page string, next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(uint)
		if !ok {
			respondAuthError(w, http.StatusUnauthorized, "User ID not found in context")
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			respondAuthError(w, http.StatusUnauthorized, "Unknown user")
			return
		}
		if !user.IsActive {
			respondAuthError(w, http.StatusForbidden, "Account is deactivated")
			return
		}
		if !user.HasPermission(page) {
			respondAuthError(w, http.StatusForbidden, "Access to this page is not permitted")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: false, Error: message})
}
