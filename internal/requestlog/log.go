// Package requestlog records authorized requests and serves the recent window.
package requestlog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kvgate/kvgate/internal/auth"
	"github.com/kvgate/kvgate/internal/metrics"
	"github.com/kvgate/kvgate/internal/model"
)

const (
	// AppendTimeout bounds a single background append.
	AppendTimeout = 100 * time.Millisecond

	// DefaultWindow is the number of entries returned by the logs endpoint.
	DefaultWindow = 50

	// DefaultBufferSize is the number of entries that may wait for the writer.
	DefaultBufferSize = 1024
)

// Repository persists log entries.
type Repository interface {
	AppendLogEntry(ctx context.Context, entry model.LogEntry, maxEntries int64) error
	RecentLogEntries(ctx context.Context, n int64) ([]model.LogEntry, error)
}

// UserResolver maps an API key to its user id. An empty result means unknown.
type UserResolver interface {
	UserOf(ctx context.Context, apiKey string) string
}

// Options configures a Log.
type Options struct {
	// MaxEntries trims the log to the newest N entries. Zero keeps everything.
	MaxEntries int64
	// Timeout overrides AppendTimeout when positive.
	Timeout time.Duration
	// BufferSize overrides DefaultBufferSize when positive.
	BufferSize int
}

// Log appends request records in the background.
// A single writer drains a FIFO queue, so entries reach the backend in the
// order Append was called.
type Log struct {
	repo    Repository
	users   UserResolver
	opts    Options
	logger  *slog.Logger
	metrics metrics.Recorder

	queue chan model.LogEntry
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// New creates a request Log and starts its writer. users may be nil.
func New(repo Repository, users UserResolver, opts Options, logger *slog.Logger, recorder metrics.Recorder) *Log {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = AppendTimeout
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}

	l := &Log{
		repo:    repo,
		users:   users,
		opts:    opts,
		logger:  logger.With("component", "requestlog"),
		metrics: recorder,
		queue:   make(chan model.LogEntry, opts.BufferSize),
		done:    make(chan struct{}),
	}
	go l.run()

	return l
}

// Append records a request for apiKey on endpoint without blocking the caller.
// When the queue is full or the log is closed the entry is dropped and counted.
func (l *Log) Append(apiKey, endpoint string) {
	entry := model.LogEntry{
		ID:        ulid.Make().String(),
		APIKey:    apiKey,
		Endpoint:  endpoint,
		Timestamp: time.Now().Unix(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.metrics.IncRequestLogAppend(metrics.AppendDropped)
		return
	}

	select {
	case l.queue <- entry:
	default:
		l.logger.Warn("request log queue full, dropping entry",
			"endpoint", endpoint,
			"key_fingerprint", auth.Fingerprint(apiKey),
		)
		l.metrics.IncRequestLogAppend(metrics.AppendDropped)
	}
}

func (l *Log) run() {
	defer close(l.done)
	for entry := range l.queue {
		l.write(entry)
	}
}

// write resolves the owner and persists one entry. Failures are logged and
// counted, never returned.
func (l *Log) write(entry model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), l.opts.Timeout)
	defer cancel()

	if l.users != nil {
		entry.UserID = l.users.UserOf(ctx, entry.APIKey)
	}

	if err := l.repo.AppendLogEntry(ctx, entry, l.opts.MaxEntries); err != nil {
		l.logger.Warn("failed to append request log entry",
			"endpoint", entry.Endpoint,
			"key_fingerprint", auth.Fingerprint(entry.APIKey),
			"error", err,
		)
		l.metrics.IncRequestLogAppend(metrics.AppendDropped)
		return
	}

	l.metrics.IncRequestLogAppend(metrics.AppendSuccess)
}

// Recent returns up to n of the newest entries, oldest first.
// An unreadable log yields an empty slice.
func (l *Log) Recent(ctx context.Context, n int) []model.LogEntry {
	entries, err := l.repo.RecentLogEntries(ctx, int64(n))
	if err != nil {
		l.logger.Warn("failed to read request log", "error", err)
		l.metrics.IncBackendFallback("logs")
		return []model.LogEntry{}
	}
	return entries
}

// Close stops accepting entries and waits until the queue is drained or ctx
// is done. It is safe to call more than once.
func (l *Log) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
