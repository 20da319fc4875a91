package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/handler/dto"
	"github.com/kvgate/kvgate/internal/model"
)

// KeyIssuer mints and persists API keys.
type KeyIssuer interface {
	Issue(ctx context.Context, userID string, role model.Role) (string, error)
}

// APIKeyHandler handles API key issuance.
type APIKeyHandler struct {
	logger *slog.Logger
	issuer KeyIssuer
}

// NewAPIKeyHandler creates a new APIKeyHandler.
func NewAPIKeyHandler(logger *slog.Logger, issuer KeyIssuer) *APIKeyHandler {
	return &APIKeyHandler{
		logger: logger.With("component", "handler.apikey"),
		issuer: issuer,
	}
}

// Generate handles POST /generate_key.
// The key is returned in plaintext exactly once.
func (h *APIKeyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateKeyRequest
	if err := dto.Decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidKeyParams)
		return
	}

	role, ok := model.ParseRole(req.Role)
	if !ok {
		writeError(w, http.StatusBadRequest, MsgInvalidKeyParams)
		return
	}

	apiKey, err := h.issuer.Issue(r.Context(), req.UserID, role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidUserID), errors.Is(err, auth.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, MsgInvalidKeyParams)
		case errors.Is(err, auth.ErrPersistFailed):
			writeError(w, http.StatusServiceUnavailable, MsgUnavailable)
		default:
			h.logger.Error("failed to issue API key", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.GenerateKeyResponse{APIKey: apiKey, Role: role})
}
