package trendstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/culture-compass/internal/domain/recommendation"
)

// MemoryStore keeps preference counters in process memory for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// Increment bumps the counter for a canonical preference and records a display string.
func (s *MemoryStore) Increment(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// Top returns the most requested preferences.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]recommendation.TrendingPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]recommendation.TrendingPreference, 0, len(s.counts))
	for canonical, count := range s.counts {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, recommendation.TrendingPreference{Preference: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Preference < items[j].Preference
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ recommendation.TrendStore = (*MemoryStore)(nil)
