package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/model"
)

// RoleResolver returns the role bound to an API key.
type RoleResolver interface {
	RoleOf(ctx context.Context, apiKey string) model.Role
}

// RequireAdmin returns middleware that admits only admin keys.
// Must be applied after Auth middleware.
func RequireAdmin(roles RoleResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx := auth.AuthFromContext(r.Context())
			if authCtx == nil {
				writeError(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			}

			if !roles.RoleOf(r.Context(), authCtx.APIKey).IsAdmin() {
				logger.Warn("admin access denied",
					slog.String("key_fingerprint", authCtx.Fingerprint),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeError(w, http.StatusForbidden, MsgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
