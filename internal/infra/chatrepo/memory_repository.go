package chatrepo

import (
	"context"
	"sync"

	"github.com/yanqian/culture-compass/internal/domain/chat"
	"github.com/yanqian/culture-compass/pkg/util"
)

// MemoryRepository keeps chat exchanges in process memory for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages []chat.Message
	seq      int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Record appends an exchange.
func (r *MemoryRepository) Record(_ context.Context, userID int64, message, response string) (chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := chat.Message{
		ID:        r.seq,
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: util.NowUTC(),
	}
	r.messages = append(r.messages, stored)
	return stored, nil
}

// ListByUser returns a user's exchanges in insertion order.
func (r *MemoryRepository) ListByUser(_ context.Context, userID int64) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]chat.Message, 0)
	for _, msg := range r.messages {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

var _ chat.Repository = (*MemoryRepository)(nil)
