package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hallaoui/ferme-ops/pkg/auth"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	RoleKey    contextKey = "role"
	FermeIDKey contextKey = "ferme_id"
)

// AuthMiddleware validates the bearer JWT and stores claims in the context
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, FermeIDKey, claims.FermeID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// SuperAdminMiddleware restricts a route to cross-sector administrators
func SuperAdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(RoleKey).(string)
		if !ok || role != "superadmin" {
			respondError(w, http.StatusForbidden, "Superadmin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// canAccessFerme reports whether the authenticated account may touch the
// given sector. Superadmins may touch every sector, admins only their own.
func canAccessFerme(ctx context.Context, fermeID uint) bool {
	role, _ := ctx.Value(RoleKey).(string)
	if role == "superadmin" {
		return true
	}
	own, ok := ctx.Value(FermeIDKey).(uint)
	return ok && own == fermeID
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
