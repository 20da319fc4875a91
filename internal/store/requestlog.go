package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kvgate/kvgate/internal/model"
)

// AppendLogEntry pushes entry onto the tail of the request log.
// When maxEntries is positive the list is trimmed to the newest maxEntries
// in the same pipeline.
func (s *Store) AppendLogEntry(ctx context.Context, entry model.LogEntry, maxEntries int64) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}

	if maxEntries <= 0 {
		return classify("rpush log", s.client.RPush(ctx, RequestLogKey, data).Err())
	}

	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, RequestLogKey, data)
		pipe.LTrim(ctx, RequestLogKey, -maxEntries, -1)
		return nil
	})
	return classify("rpush log", err)
}

// RecentLogEntries returns the last n entries, oldest first.
// Entries that fail to decode are skipped.
func (s *Store) RecentLogEntries(ctx context.Context, n int64) ([]model.LogEntry, error) {
	if n <= 0 {
		return []model.LogEntry{}, nil
	}

	raw, err := s.client.LRange(ctx, RequestLogKey, -n, -1).Result()
	if err != nil {
		return nil, classify("lrange log", err)
	}

	entries := make([]model.LogEntry, 0, len(raw))
	for _, item := range raw {
		var entry model.LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LogLength returns the number of entries in the request log.
func (s *Store) LogLength(ctx context.Context) (int64, error) {
	n, err := s.client.LLen(ctx, RequestLogKey).Result()
	if err != nil {
		return 0, classify("llen log", err)
	}
	return n, nil
}
