// Package store provides the Redis backend access layer.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Reserved keys and prefixes owned by the service itself.
const (
	// CredentialKeyPrefix is the Redis key prefix for API key credentials.
	CredentialKeyPrefix = "apikey:"
	// RequestLogKey is the Redis list holding the request log.
	RequestLogKey = "api_logs"
	// rateLimitKeyPrefix is the Redis key prefix for rate limit buckets.
	rateLimitKeyPrefix = "ratelimit:"
)

// Backend errors. Callers match them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrNotInteger  = errors.New("value is not an integer")
	ErrWrongType   = errors.New("operation against a key holding the wrong kind of value")
	ErrUnavailable = errors.New("backend unavailable")
)

// Store provides Redis access methods.
type Store struct {
	client *redis.Client
}

// New creates a Store from resolved connection options.
// It does not dial; the pool connects lazily on first use.
func New(opts *redis.Options) *Store {
	return &Store{client: redis.NewClient(opts)}
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// ServerVersion returns the redis_version field of INFO server.
func (s *Store) ServerVersion(ctx context.Context) (string, error) {
	info, err := s.client.Info(ctx, "server").Result()
	if err != nil {
		return "", classify("info", err)
	}

	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "redis_version:"); ok {
			return v, nil
		}
	}
	return "unknown", nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// IsReserved reports whether key belongs to the service's own namespace.
func IsReserved(key string) bool {
	return key == RequestLogKey ||
		strings.HasPrefix(key, CredentialKeyPrefix) ||
		strings.HasPrefix(key, rateLimitKeyPrefix)
}

// classify maps a go-redis error onto the package sentinels.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}

	var rerr redis.Error
	if errors.As(err, &rerr) {
		msg := rerr.Error()
		switch {
		case strings.Contains(msg, "not an integer"):
			return fmt.Errorf("%s: %w", op, ErrNotInteger)
		case strings.HasPrefix(msg, "WRONGTYPE"):
			return fmt.Errorf("%s: %w", op, ErrWrongType)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	// Anything that is not a server reply is a transport problem:
	// refused connection, timeout, pool exhaustion, cancelled context.
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}
