package chat

import (
	"context"
	"time"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
)

// DefaultUserID is used when the caller does not identify a traveller.
const DefaultUserID int64 = 1

// Request is one chat turn.
type Request struct {
	UserID      int64                   `json:"userId,omitempty"`
	Message     string                  `json:"message"`
	Preferences []string                `json:"userPreferences,omitempty"`
	Destination string                  `json:"currentDestination,omitempty"`
	Itinerary   []advisor.ItineraryItem `json:"itinerary,omitempty"`
}

// Response is the assistant reply plus the stored message id (0 when not stored).
type Response struct {
	advisor.AdviceResponse
	MessageID int64 `json:"messageId"`
}

// Message is a persisted exchange.
type Message struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Repository persists chat exchanges.
type Repository interface {
	Record(ctx context.Context, userID int64, message, response string) (Message, error)
	ListByUser(ctx context.Context, userID int64) ([]Message, error)
}
