package handler

import (
	"context"
	"net/http"

	"github.com/kvgate/kvgate/internal/handler/dto"
	"github.com/kvgate/kvgate/internal/model"
)

// RecentLog returns the newest request log entries, oldest first.
type RecentLog interface {
	Recent(ctx context.Context, n int) []model.LogEntry
}

// LogsHandler serves the admin request log view.
type LogsHandler struct {
	log    RecentLog
	window int
}

// NewLogsHandler creates a LogsHandler returning up to window entries.
func NewLogsHandler(log RecentLog, window int) *LogsHandler {
	return &LogsHandler{log: log, window: window}
}

// Logs handles GET /logs. Admin only; the role check runs in middleware.
func (h *LogsHandler) Logs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.LogsResponse{Logs: h.log.Recent(r.Context(), h.window)})
}
