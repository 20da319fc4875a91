package handler

import (
	"fmt"
	"net/http"

	"github.com/kvgate/kvgate/internal/handler/dto"
)

// HSet handles POST /hset.
func (h *DataHandler) HSet(w http.ResponseWriter, r *http.Request) {
	var req dto.HSetRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Hash, "Hash, field and value are required")
		return
	}

	if err := h.store.HSet(r.Context(), req.Hash, req.Field, req.Value.String()); err != nil {
		handleStoreError(w, h.logger, err, MsgFieldNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Stored field '%s' in hash '%s'", req.Field, req.Hash),
	})
}

// HGet handles GET /hget?hash=&field=.
func (h *DataHandler) HGet(w http.ResponseWriter, r *http.Request) {
	q := dto.HGetQuery{
		Hash:  r.URL.Query().Get("hash"),
		Field: r.URL.Query().Get("field"),
	}
	if err := dto.Validate(&q); err != nil {
		writeValidationError(w, err, q.Hash, "Hash and field are required")
		return
	}

	value, err := h.store.HGet(r.Context(), q.Hash, q.Field)
	if err != nil {
		handleStoreError(w, h.logger, err, MsgFieldNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.HashFieldResponse{Hash: q.Hash, Field: q.Field, Value: value})
}
