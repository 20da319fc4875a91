package handler

import (
	"fmt"
	"net/http"

	"github.com/kvgate/kvgate/internal/handler/dto"
)

// Enqueue handles POST /enqueue. Items are appended at the tail.
func (h *DataHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req dto.EnqueueRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Queue, "Queue and value are required")
		return
	}

	if err := h.store.Enqueue(r.Context(), req.Queue, req.Value.String()); err != nil {
		handleStoreError(w, h.logger, err, MsgQueueEmpty)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Enqueued '%s' to queue '%s'", req.Value, req.Queue),
	})
}

// Dequeue handles GET /dequeue?queue=. Items are taken from the head.
func (h *DataHandler) Dequeue(w http.ResponseWriter, r *http.Request) {
	q := dto.QueueQuery{Queue: r.URL.Query().Get("queue")}
	if err := dto.Validate(&q); err != nil {
		writeValidationError(w, err, q.Queue, "Queue is required")
		return
	}

	value, err := h.store.Dequeue(r.Context(), q.Queue)
	if err != nil {
		handleStoreError(w, h.logger, err, MsgQueueEmpty)
		return
	}

	writeJSON(w, http.StatusOK, dto.QueueItemResponse{Queue: q.Queue, Value: value})
}
