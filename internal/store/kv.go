package store

import (
	"context"
	"slices"
	"time"
)

// scanBatch is the COUNT hint passed to SCAN.
const scanBatch = 1000

// Set stores value under key. A zero ttl stores the key without expiry;
// otherwise value and expiry are applied by a single SET EX.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return classify("set", s.client.Set(ctx, key, value, ttl).Err())
}

// Get returns the string stored at key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", classify("get", err)
	}
	return value, nil
}

// Keys returns the sorted keys matching pattern, excluding reserved keys.
// It walks the keyspace with SCAN instead of KEYS so Redis is never blocked.
func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if IsReserved(key) {
			continue
		}
		keys = append(keys, key)
	}
	if err := iter.Err(); err != nil {
		return nil, classify("scan", err)
	}

	// SCAN may return a key more than once.
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// Delete removes key. Returns ErrNotFound when nothing was deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return classify("del", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Expire sets a TTL on an existing key. Returns ErrNotFound if key is absent.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ok, err := s.client.Expire(ctx, key, ttl).Result()
	if err != nil {
		return classify("expire", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// TTL returns the remaining time to live of key.
// Returns ErrNotFound if the key is absent or has no TTL.
func (s *Store) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, classify("ttl", err)
	}
	// -1 (no expiry) and -2 (missing key) come back as raw negative durations.
	if ttl < 0 {
		return 0, ErrNotFound
	}
	return ttl, nil
}

// Incr increments the integer at key, creating it at zero first if absent.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, classify("incr", err)
	}
	return n, nil
}

// Decr decrements the integer at key, creating it at zero first if absent.
func (s *Store) Decr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Decr(ctx, key).Result()
	if err != nil {
		return 0, classify("decr", err)
	}
	return n, nil
}

// HSet sets field in hash.
func (s *Store) HSet(ctx context.Context, hash, field, value string) error {
	return classify("hset", s.client.HSet(ctx, hash, field, value).Err())
}

// HGet returns field from hash, or ErrNotFound.
func (s *Store) HGet(ctx context.Context, hash, field string) (string, error) {
	value, err := s.client.HGet(ctx, hash, field).Result()
	if err != nil {
		return "", classify("hget", err)
	}
	return value, nil
}

// Enqueue appends value to the tail of queue.
func (s *Store) Enqueue(ctx context.Context, queue, value string) error {
	return classify("rpush", s.client.RPush(ctx, queue, value).Err())
}

// Dequeue pops the head of queue. Returns ErrNotFound when it is empty.
func (s *Store) Dequeue(ctx context.Context, queue string) (string, error) {
	value, err := s.client.LPop(ctx, queue).Result()
	if err != nil {
		return "", classify("lpop", err)
	}
	return value, nil
}
