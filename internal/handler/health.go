package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking backend health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	backend HealthChecker
	version string
	logger  *slog.Logger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(backend HealthChecker, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		version: version,
		logger:  logger.With("component", "handler.health"),
		timeout: 2 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status         string `json:"status"`
	RedisConnected bool   `json:"redis_connected"`
	RedisVersion   string `json:"redis_version,omitempty"`
	RedisError     string `json:"redis_error,omitempty"`
	Version        string `json:"version,omitempty"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running.
// No dependency checks - this is for Kubernetes liveness probes.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Health reports backend connectivity. It always answers 200; an
// unreachable backend is reported as "degraded".
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Version: h.version}

	if err := h.backend.Ping(ctx); err != nil {
		h.logger.Error("health check: backend unreachable", "error", err)
		resp.Status = "degraded"
		resp.RedisError = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.RedisConnected = true
	version, err := h.backend.ServerVersion(ctx)
	if err != nil {
		h.logger.Warn("health check: server version unavailable", "error", err)
		version = "unknown"
	}
	resp.RedisVersion = version

	writeJSON(w, http.StatusOK, resp)
}
