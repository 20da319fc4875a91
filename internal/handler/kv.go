package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kvgate/kvgate/internal/handler/dto"
)

// DataStore is the set of backend primitives exposed over HTTP.
// Each method is a single backend round-trip.
type DataStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Incr(ctx context.Context, key string) (int64, error)
	Decr(ctx context.Context, key string) (int64, error)
	HSet(ctx context.Context, hash, field, value string) error
	HGet(ctx context.Context, hash, field string) (string, error)
	Enqueue(ctx context.Context, queue, value string) error
	Dequeue(ctx context.Context, queue string) (string, error)
}

// DataHandler translates data endpoint requests into backend calls.
type DataHandler struct {
	store  DataStore
	logger *slog.Logger
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(store DataStore, logger *slog.Logger) *DataHandler {
	return &DataHandler{
		store:  store,
		logger: logger.With("component", "handler.data"),
	}
}

// Set handles POST /set.
func (h *DataHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Key, "Key and value are required")
		return
	}

	var ttl time.Duration
	if req.TTL != nil {
		ttl = time.Duration(*req.TTL) * time.Second
	}

	if err := h.store.Set(r.Context(), req.Key, req.Value.String(), ttl); err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Stored '%s' successfully!", req.Key),
	})
}

// Get handles GET /get?key=.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := dto.KeyQuery{Key: r.URL.Query().Get("key")}
	if err := dto.Validate(&q); err != nil {
		writeValidationError(w, err, q.Key, "Key is required")
		return
	}

	value, err := h.store.Get(r.Context(), q.Key)
	if err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.KeyValueResponse{Key: q.Key, Value: value})
}

// ListKeys handles GET /list_keys. An optional ?pattern= narrows the scan.
func (h *DataHandler) ListKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.store.Keys(r.Context(), r.URL.Query().Get("pattern"))
	if err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.KeysResponse{Keys: keys})
}

// Delete handles DELETE /delete.
func (h *DataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.KeyRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Key, "Key is required")
		return
	}

	if err := h.store.Delete(r.Context(), req.Key); err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Deleted '%s' successfully!", req.Key),
	})
}

// Expire handles POST /expire. A ttl of 0 expires the key immediately.
func (h *DataHandler) Expire(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpireRequest
	if err := dto.Decode(r, &req); err != nil {
		writeValidationError(w, err, req.Key, "Key and ttl are required")
		return
	}

	if err := h.store.Expire(r.Context(), req.Key, time.Duration(*req.TTL)*time.Second); err != nil {
		handleStoreError(w, h.logger, err, MsgKeyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("TTL set for '%s' to %d seconds", req.Key, *req.TTL),
	})
}

// TTL handles GET /ttl?key=.
func (h *DataHandler) TTL(w http.ResponseWriter, r *http.Request) {
	q := dto.KeyQuery{Key: r.URL.Query().Get("key")}
	if err := dto.Validate(&q); err != nil {
		writeValidationError(w, err, q.Key, "Key is required")
		return
	}

	ttl, err := h.store.TTL(r.Context(), q.Key)
	if err != nil {
		handleStoreError(w, h.logger, err, MsgNoTTL)
		return
	}

	writeJSON(w, http.StatusOK, dto.TTLResponse{Key: q.Key, TTL: int64(ttl / time.Second)})
}
