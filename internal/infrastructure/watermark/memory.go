package watermark

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when redis is not
// configured. Watermarks are lost on restart, which only means one
// baseline poll per session afterwards.
type MemoryStore struct {
	mu    sync.RWMutex
	marks map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{marks: make(map[string]time.Time)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.marks[sessionID]
	return t, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[sessionID] = t
	return nil
}
