package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore is the contract the limiter needs from a shared counter
// backend: a post-increment read with the window TTL set in the same atomic
// round trip, so no counter ever lingers without an expiry.
type CounterStore interface {
	IncrementWithExpiry(ctx context.Context, key string, expireAt time.Time) (int64, error)
}

// RedisCounterStore backs the limiter with a shared redis instance, so the
// window counts hold across every process serving requests.
type RedisCounterStore struct {
	rdb *redis.Client
}

func NewRedisCounterStore(rdb *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{rdb: rdb}
}

func (s *RedisCounterStore) IncrementWithExpiry(ctx context.Context, key string, expireAt time.Time) (int64, error) {
	pipe := s.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireAt(ctx, key, expireAt)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// MemoryCounterStore is a mutex-guarded in-process store for tests and
// redis-less development. Counts are only shared within one process.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*counterEntry
	now     func() time.Time
}

type counterEntry struct {
	count     int64
	expiresAt time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		entries: make(map[string]*counterEntry),
		now:     time.Now,
	}
}

func (s *MemoryCounterStore) IncrementWithExpiry(_ context.Context, key string, expireAt time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if ok && !ent.expiresAt.IsZero() && s.now().After(ent.expiresAt) {
		ok = false
	}
	if !ok {
		ent = &counterEntry{}
		s.entries[key] = ent
	}
	ent.count++
	ent.expiresAt = expireAt
	return ent.count, nil
}
