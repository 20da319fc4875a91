// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/kvgate/kvgate/internal/model"
	"github.com/kvgate/kvgate/internal/store"
)

// NewMiniRedis starts an in-process Redis and returns it with a Store bound to it.
// Both are closed when the test ends.
func NewMiniRedis(t testing.TB) (*miniredis.Miniredis, *store.Store) {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}

	s := store.New(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = s.Close()
		srv.Close()
	})

	return srv, s
}

// NewUnreachableStore returns a Store pointed at an address nothing listens on,
// with short timeouts so failure paths complete quickly.
func NewUnreachableStore(t testing.TB) *store.Store {
	t.Helper()

	s := store.New(&redis.Options{
		Addr:         "127.0.0.1:0",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedCredential writes a credential for apiKey directly to the backend.
func SeedCredential(t testing.TB, s *store.Store, apiKey, userID string, role model.Role) {
	t.Helper()
	err := s.SaveCredential(context.Background(), apiKey, model.Credential{UserID: userID, Role: role})
	if err != nil {
		t.Fatalf("seed credential: %v", err)
	}
}
