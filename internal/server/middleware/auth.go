// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/mdkeeper/internal/server/handlers"
)

// AuthMiddleware проверяет JWT access token и кладет пользователя в контекст
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := handlers.BearerToken(r)
			if err != nil {
				logger.WarnContext(r.Context(), "missing bearer token", slog.String("path", r.URL.Path))
				handlers.WriteError(logger, w, http.StatusUnauthorized, "missing or malformed Authorization header", "")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid access token", slog.Any("error", err))
				handlers.WriteError(logger, w, http.StatusUnauthorized, "invalid or expired access token", "")
				return
			}

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
