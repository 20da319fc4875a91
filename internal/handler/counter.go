package handler

import (
	"context"
	"net/http"

	"github.com/kvgate/kvgate/internal/handler/dto"
)

// Incr handles POST /incr. Missing keys start at zero.
func (h *DataHandler) Incr(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.store.Incr)
}

// Decr handles POST /decr. Missing keys start at zero.
func (h *DataHandler) Decr(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.store.Decr)
}

func (h *DataHandler) step(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (int64, error)) {
	var req dto.KeyRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Key, "Key is required")
		return
	}

	value, err := op(r.Context(), req.Key)
	if err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.CounterResponse{Key: req.Key, Value: value})
}
