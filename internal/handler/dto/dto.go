// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/kvgate/kvgate/internal/model"
)

// GenerateKeyRequest is the body of POST /generate_key.
type GenerateKeyRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin user"`
}

// GenerateKeyResponse is returned once; the key is never shown again.
type GenerateKeyResponse struct {
	APIKey string     `json:"api_key"`
	Role   model.Role `json:"role"`
}

// SetRequest is the body of POST /set. A zero or absent TTL means no expiry.
type SetRequest struct {
	Key   string `json:"key" validate:"required,max=1024,notreserved"`
	Value Scalar `json:"value" validate:"required"`
	TTL   *int64 `json:"ttl,omitempty" validate:"omitempty,gte=0"`
}

// KeyRequest is the body of POST /incr, POST /decr and DELETE /delete.
type KeyRequest struct {
	Key string `json:"key" validate:"required,max=1024,notreserved"`
}

// ExpireRequest is the body of POST /expire.
type ExpireRequest struct {
	Key string `json:"key" validate:"required,max=1024,notreserved"`
	TTL *int64 `json:"ttl" validate:"required,gte=0"`
}

// HSetRequest is the body of POST /hset.
type HSetRequest struct {
	Hash  string `json:"hash" validate:"required,max=1024,notreserved"`
	Field string `json:"field" validate:"required"`
	Value Scalar `json:"value" validate:"required"`
}

// EnqueueRequest is the body of POST /enqueue.
type EnqueueRequest struct {
	Queue string `json:"queue" validate:"required,max=1024,notreserved"`
	Value Scalar `json:"value" validate:"required"`
}

// KeyQuery holds the query of GET /get and GET /ttl.
type KeyQuery struct {
	Key string `validate:"required,max=1024,notreserved"`
}

// HGetQuery holds the query of GET /hget.
type HGetQuery struct {
	Hash  string `validate:"required,max=1024,notreserved"`
	Field string `validate:"required"`
}

// QueueQuery holds the query of GET /dequeue.
type QueueQuery struct {
	Queue string `validate:"required,max=1024,notreserved"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// KeyValueResponse is returned by GET /get.
type KeyValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CounterResponse is returned by POST /incr and POST /decr.
type CounterResponse struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}

// TTLResponse is returned by GET /ttl.
type TTLResponse struct {
	Key string `json:"key"`
	TTL int64  `json:"ttl"`
}

// HashFieldResponse is returned by GET /hget.
type HashFieldResponse struct {
	Hash  string `json:"hash"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// QueueItemResponse is returned by GET /dequeue.
type QueueItemResponse struct {
	Queue string `json:"queue"`
	Value string `json:"value"`
}

// KeysResponse is returned by GET /list_keys.
type KeysResponse struct {
	Keys []string `json:"keys"`
}

// LogsResponse is returned by GET /logs.
type LogsResponse struct {
	Logs []model.LogEntry `json:"logs"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}
