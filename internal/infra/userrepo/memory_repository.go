package userrepo

import (
	"context"
	"sync"

	"github.com/yanqian/culture-compass/internal/domain/user"
	"github.com/yanqian/culture-compass/pkg/util"
)

// MemoryRepository provides an in-memory preference store for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	prefs map[int64]user.Preferences
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{prefs: make(map[int64]user.Preferences)}
}

// Upsert replaces the stored preferences for a user.
func (r *MemoryRepository) Upsert(_ context.Context, userID int64, preferences []string) (user.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := user.Preferences{
		UserID:      userID,
		Preferences: append([]string{}, preferences...),
		UpdatedAt:   util.NowUTC(),
	}
	r.prefs[userID] = record
	return clonePreferences(record), nil
}

// Get fetches preferences by user ID.
func (r *MemoryRepository) Get(_ context.Context, userID int64) (user.Preferences, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.prefs[userID]
	if !ok {
		return user.Preferences{}, false, nil
	}
	return clonePreferences(record), true, nil
}

func clonePreferences(p user.Preferences) user.Preferences {
	p.Preferences = append([]string{}, p.Preferences...)
	return p
}

var _ user.Repository = (*MemoryRepository)(nil)
