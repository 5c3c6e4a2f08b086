package itineraryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
	"github.com/yanqian/culture-compass/pkg/util"
)

// MemoryRepository keeps itineraries in process memory for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[int64]itinerary.Itinerary
	seq   int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]itinerary.Itinerary)}
}

// Create stores a new itinerary and assigns its id.
func (r *MemoryRepository) Create(_ context.Context, it itinerary.Itinerary) (itinerary.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	it.ID = r.seq
	it.CreatedAt = util.NowUTC()
	it.Items = cloneItems(it.Items)
	r.items[it.ID] = it
	return withClonedItems(it), nil
}

// Get fetches by id.
func (r *MemoryRepository) Get(_ context.Context, id int64) (itinerary.Itinerary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return itinerary.Itinerary{}, false, nil
	}
	return withClonedItems(it), true, nil
}

// ListByUser returns a user's itineraries ordered by id.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64) ([]itinerary.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]itinerary.Itinerary, 0)
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, withClonedItems(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateItems replaces the item list.
func (r *MemoryRepository) UpdateItems(_ context.Context, id int64, items []itinerary.Item) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return false, nil
	}
	it.Items = cloneItems(items)
	r.items[id] = it
	return true, nil
}

func withClonedItems(it itinerary.Itinerary) itinerary.Itinerary {
	it.Items = cloneItems(it.Items)
	return it
}

// cloneItems never returns nil so stored itineraries always render items as [].
func cloneItems(items []itinerary.Item) []itinerary.Item {
	out := make([]itinerary.Item, len(items))
	copy(out, items)
	return out
}

var _ itinerary.Repository = (*MemoryRepository)(nil)
