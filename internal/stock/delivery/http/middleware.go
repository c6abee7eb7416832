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
	UserIDKey    contextKey = "user_id"
	RoleKey      contextKey = "role"
	SecteurIDKey contextKey = "secteur_id"
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
		ctx = context.WithValue(ctx, SecteurIDKey, claims.FermeID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func isSuperAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(RoleKey).(string)
	return role == "superadmin"
}

func actorSecteur(ctx context.Context) uint {
	secteurID, _ := ctx.Value(SecteurIDKey).(uint)
	return secteurID
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
