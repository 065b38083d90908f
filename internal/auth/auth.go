package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avasse/roomly-be/internal/models"
	"github.com/rs/zerolog/log"
)

// TokenResolver resolves an opaque bearer token back to the user it was
// issued to. Unknown tokens come back as an error.
type TokenResolver interface {
	GetByToken(token string) (models.User, error)
}

type contextKey string

const userContextKey = contextKey("authUser")

// Middleware creates the guard protecting mutation routes. It resolves the
// bearer token and attaches the identified user to the request context; it
// does not check resource ownership — that stays with each operation.
func Middleware(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, "Bearer ")
				if len(parts) == 2 {
					tokenStr = strings.TrimSpace(parts[1])
				}
			}

			if tokenStr == "" {
				reject(w)
				return
			}

			user, err := resolver.GetByToken(tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to resolve bearer token")
				reject(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user attached by the guard.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}

func reject(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
