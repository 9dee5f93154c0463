// Package cache provides a small in-process TTL store shared by the fetch
// layer. Entries are replaced wholesale, never partially updated, so readers
// always observe a complete value. There is no single-flight guard: two
// callers refreshing the same stale key may both hit the upstream provider,
// and the last writer wins.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Store is a generic key -> (value, fetch-time) cache. The zero value is not
// usable; construct with New. Safe for concurrent use.
type Store[V any] struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries map[string]entry[V]
}

// New creates an empty Store using the given clock. A nil clock falls back
// to time.Now; tests inject their own.
func New[V any](now func() time.Time) *Store[V] {
	if now == nil {
		now = time.Now
	}
	return &Store[V]{
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the stored value and its age. The second return is false when
// the key has never been written. Get does not interpret age; staleness is
// the caller's policy.
func (s *Store[V]) Get(key string) (V, time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, 0, false
	}
	return e.value, s.now().Sub(e.fetchedAt), true
}

// Fresh returns the stored value only if its age is strictly below ttl.
// An entry written at T is fresh at T+299s and stale at T+300s for a 300s
// ttl. A zero ttl means the entry never expires.
func (s *Store[V]) Fresh(key string, ttl time.Duration) (V, bool) {
	value, age, ok := s.Get(key)
	if !ok || (ttl > 0 && age >= ttl) {
		var zero V
		return zero, false
	}
	return value, true
}

// Put stores value under key, stamped with the current clock. Any previous
// entry is replaced in a single assignment.
func (s *Store[V]) Put(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, fetchedAt: s.now()}
}

// Len reports the number of stored entries. Stale entries are counted; the
// store never purges proactively.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
