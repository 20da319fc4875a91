package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kvgate/kvgate/internal/handler/dto"
	"github.com/kvgate/kvgate/internal/store"
)

// Error messages shared by the data endpoints.
const (
	MsgKeyNotFound      = "Key not found"
	MsgNoTTL            = "No TTL set or key not found"
	MsgFieldNotFound    = "Field not found"
	MsgQueueEmpty       = "Queue is empty"
	MsgNotInteger       = "Value is not an integer"
	MsgWrongType        = "Operation against a key holding the wrong kind of value"
	MsgUnavailable      = "Backend unavailable"
	MsgInternal         = "Internal server error"
	MsgNegativeTTL      = "TTL must be a non-negative integer"
	MsgKeyTooLong       = "Key must be at most 1024 characters"
	MsgInvalidKeyParams = "User ID is required and role must be 'admin' or 'user'"
)

// handleStoreError maps store errors to HTTP responses.
// notFound is the endpoint-specific message for an absent key, field or item.
func handleStoreError(w http.ResponseWriter, logger *slog.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrNotInteger):
		writeError(w, http.StatusBadRequest, MsgNotInteger)
	case errors.Is(err, store.ErrWrongType):
		writeError(w, http.StatusBadRequest, MsgWrongType)
	case errors.Is(err, store.ErrUnavailable):
		logger.Warn("backend unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, MsgUnavailable)
	default:
		logger.Error("unexpected store error", "error", err)
		writeError(w, http.StatusInternalServerError, MsgInternal)
	}
}

// writeValidationError picks the message for a failed decode or validation.
// required is the endpoint's message for missing fields.
func writeValidationError(w http.ResponseWriter, err error, name, required string) {
	switch {
	case dto.FailedTag(err, dto.TagNotReserved):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("'%s' is reserved", name))
	case dto.FailedTag(err, dto.TagGTE):
		writeError(w, http.StatusBadRequest, MsgNegativeTTL)
	case dto.FailedTag(err, dto.TagMax):
		writeError(w, http.StatusBadRequest, MsgKeyTooLong)
	default:
		writeError(w, http.StatusBadRequest, required)
	}
}
