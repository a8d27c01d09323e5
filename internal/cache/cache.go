// Package cache provides the redis-backed read-through layer the
// repositories call through instead of hitting the document store on
// every request.  Entries are JSON blobs keyed by namespace; each
// namespace has its own revalidation TTL from the cache configuration.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cineretro/cine-calendrier/internal/config"
)

// Store is the cache collaborator.  A nil redis client, or a disabled
// configuration, turns every operation into a no-op so reads fall through
// to the store untouched.
type Store struct {
	rdb *redis.Client
	cfg config.CacheConfig
}

// New constructs a Store.  rdb may be nil.
func New(rdb *redis.Client, cfg config.CacheConfig) *Store {
	return &Store{rdb: rdb, cfg: cfg}
}

func (s *Store) enabled() bool {
	return s != nil && s.rdb != nil && s.cfg.Enabled
}

func (s *Store) key(namespace, key string) string {
	return s.cfg.Prefix + ":" + namespace + ":" + key
}

// GetJSON looks up namespace:key and decodes the cached JSON into dest.
// The boolean reports a hit; cache errors are treated as misses so a
// flaky redis never fails a read.
func (s *Store) GetJSON(ctx context.Context, namespace, key string, dest any) bool {
	if !s.enabled() {
		return false
	}
	raw, err := s.rdb.Get(ctx, s.key(namespace, key)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores v under namespace:key for the given TTL.  Failures are
// ignored; the next read simply misses.
func (s *Store) SetJSON(ctx context.Context, namespace, key string, v any, ttl time.Duration) {
	if !s.enabled() || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.rdb.SetEx(ctx, s.key(namespace, key), raw, ttl).Err()
}

// Invalidate deletes every entry of a namespace, so freshly republished
// documents become visible before their TTL lapses.  Keys are collected
// with SCAN to stay safe on a shared instance.
func (s *Store) Invalidate(ctx context.Context, namespace string) error {
	if !s.enabled() {
		return nil
	}
	pattern := s.key(namespace, "*")
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
