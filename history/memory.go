package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps history in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	limit       int
	entries     []Entry // newest first
	now         func() time.Time
}

// NewMemoryStore returns a store keeping at most limit entries.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &MemoryStore{limit: limit, now: time.Now}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.entries = make([]Entry, 0, s.limit)
	return nil
}

func (s *MemoryStore) Add(_ context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return Entry{}, ErrNotInitialized
	}
	e = stamp(e, s.now)

	kept := make([]Entry, 0, s.limit)
	kept = append(kept, e)
	for _, old := range s.entries {
		if len(kept) == s.limit {
			break
		}
		if old.sameQuery(e) {
			continue
		}
		kept = append(kept, old)
	}
	s.entries = kept
	return e, nil
}

func (s *MemoryStore) Recent(_ context.Context, n int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.entries = s.entries[:0]
	return nil
}

func (s *MemoryStore) Close() error { return nil }
