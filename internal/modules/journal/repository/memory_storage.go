package repository

import (
	"sync"

	"github.com/reshetovitsme/tg-wp-bridge/internal/modules/journal/domain"
	"github.com/samber/lo"
)

// MemoryStorage implements Repository as a fixed-size ring. The oldest
// entry is overwritten once it is full and nothing survives a restart.
type MemoryStorage struct {
	entries []*domain.Entry
	next    int
	size    int
	mu      sync.RWMutex
}

// NewMemoryStorage creates a journal holding up to capacity entries. A
// capacity of zero keeps nothing.
func NewMemoryStorage(capacity int) Repository {
	return &MemoryStorage{
		entries: make([]*domain.Entry, max(capacity, 0)),
	}
}

func (s *MemoryStorage) SaveEntry(entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}

	stored := *entry
	s.entries[s.next] = &stored
	s.next = (s.next + 1) % len(s.entries)
	s.size = min(s.size+1, len(s.entries))
	return nil
}

// GetRecentEntries returns up to limit entries, newest first. A limit of
// zero or less returns everything kept.
func (s *MemoryStorage) GetRecentEntries(limit int) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > s.size {
		limit = s.size
	}

	recent := make([]*domain.Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.entries)) % len(s.entries)
		recent = append(recent, s.entries[idx])
	}

	return lo.Map(recent, func(e *domain.Entry, _ int) *domain.Entry {
		copied := *e
		return &copied
	}), nil
}
