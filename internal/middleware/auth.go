package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/metrics"
	"github.com/kvgate/kvgate/internal/model"
)

// Error messages returned by the authorization layer.
const (
	MsgUnauthorized = "Unauthorized. Invalid API Key"
	MsgForbidden    = "Forbidden. Admin access required"
)

// CredentialChecker answers whether an API key is known.
type CredentialChecker interface {
	Exists(ctx context.Context, apiKey string) bool
}

// RequestRecorder records an authorized request without blocking.
type RequestRecorder interface {
	Append(apiKey, endpoint string)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger      *slog.Logger
	Credentials CredentialChecker
	RequestLog  RequestRecorder
	Metrics     metrics.Recorder
}

// Auth returns a middleware that authenticates API requests.
// It extracts the API key, checks that a credential exists for it,
// records the request and injects the auth context into the request.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	reject := func(w http.ResponseWriter, r *http.Request, reason string) {
		cfg.Logger.Warn("authentication failed",
			slog.String("reason", reason),
			slog.String("ip", r.RemoteAddr),
			slog.String("endpoint", r.Method+" "+r.URL.Path),
			slog.String("request_id", GetRequestID(r.Context())),
		)
		recorder.IncAuthDecision(metrics.AuthRejected)
		annotateAuth(r.Context(), "", reason)
		writeError(w, http.StatusUnauthorized, MsgUnauthorized)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractAPIKey(r)
			if raw == "" {
				reject(w, r, "missing_key")
				return
			}

			// Malformed keys can never exist; skip the backend round-trip.
			key, err := auth.ParseKey(raw)
			if err != nil {
				reject(w, r, "invalid_format")
				return
			}

			if !cfg.Credentials.Exists(r.Context(), key) {
				reject(w, r, "invalid_key")
				return
			}

			if cfg.RequestLog != nil {
				cfg.RequestLog.Append(key, r.URL.Path)
			}

			authCtx := &model.AuthContext{
				APIKey:      key,
				Fingerprint: auth.Fingerprint(key),
			}

			cfg.Logger.Debug("authentication successful",
				slog.String("key_fingerprint", authCtx.Fingerprint),
				slog.String("ip", r.RemoteAddr),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.String("request_id", GetRequestID(r.Context())),
			)
			recorder.IncAuthDecision(metrics.AuthAdmitted)
			annotateAuth(r.Context(), authCtx.Fingerprint, metrics.AuthAdmitted)

			ctx := auth.ContextWithAuth(r.Context(), authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractAPIKey extracts the API key from the request.
// Supports both "X-API-Key: <key>" and "Authorization: Bearer <key>" headers.
func extractAPIKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get("X-API-Key")); key != "" {
		return key
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return ""
}

// writeError writes a {"error": message} JSON response.
// Uses the same message for all auth failures to prevent enumeration.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
