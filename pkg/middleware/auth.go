package middleware

import (
	"net/http"
	"strings"

	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

// Auth middleware validates the bearer JWT and loads user info into context
func Auth(config utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(config, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.UserName, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Provider - middleware checks provider role, must run after Auth
func Provider(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != "provider" {
				logger.Warn("Provider check: non-provider access attempt",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Provider access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
