package predictstore

import (
	"context"
	"sync"
	"time"

	"github.com/yucatanweather/app/internal/domain/prediction"
)

type cachedResult struct {
	payload   prediction.Result
	expiresAt time.Time
}

// MemoryStore is an in-process prediction cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedResult
	now     func() time.Time
}

// NewMemoryStore constructs an empty cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]cachedResult), now: time.Now}
}

// Get implements prediction.Cache.
func (s *MemoryStore) Get(_ context.Context, key string) (prediction.Result, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return prediction.Result{}, false, nil
	}
	if !entry.expiresAt.IsZero() && entry.expiresAt.Before(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return prediction.Result{}, false, nil
	}
	return entry.payload, true, nil
}

// Save implements prediction.Cache; a non-positive ttl never expires.
func (s *MemoryStore) Save(_ context.Context, key string, result prediction.Result, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = cachedResult{payload: result, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

var _ prediction.Cache = (*MemoryStore)(nil)
