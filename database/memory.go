package database

import (
	"context"
	"sync"
	"time"

	"storefront-service/models"
)

type memoryEntry struct {
	lines   []models.CartLine
	savedAt time.Time
}

// MemoryStore is the default in-process cart store. Entries expire
// lazily on read after the TTL, matching the Redis store's behavior.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]memoryEntry
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]memoryEntry),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) ([]models.CartLine, error) {
	s.mu.RLock()
	entry, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if s.ttl > 0 && time.Since(entry.savedAt) > s.ttl {
		s.mu.Lock()
		delete(s.carts, sessionID)
		s.mu.Unlock()
		return nil, nil
	}

	lines := make([]models.CartLine, len(entry.lines))
	copy(lines, entry.lines)
	return lines, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lines []models.CartLine) error {
	copied := make([]models.CartLine, len(lines))
	copy(copied, lines)

	s.mu.Lock()
	s.carts[sessionID] = memoryEntry{lines: copied, savedAt: time.Now()}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
