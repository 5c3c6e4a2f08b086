package advisor

import "time"

// DefaultCallTimeout bounds provider calls when Config leaves it unset.
const DefaultCallTimeout = 20 * time.Second

// Config holds runtime knobs for the orchestrator.
type Config struct {
	// CallTimeout bounds a single provider invocation. Zero or negative
	// values fall back to DefaultCallTimeout.
	CallTimeout time.Duration
	// RecoveryAfter lets a downgraded provider be retried once the window has
	// elapsed. Zero keeps it unavailable until Reset.
	RecoveryAfter time.Duration
}

// AdviceRequest is one chat turn worth of context.
type AdviceRequest struct {
	Message     string          `json:"message"`
	Preferences []string        `json:"userPreferences,omitempty"`
	Destination string          `json:"currentDestination,omitempty"`
	Itinerary   []ItineraryItem `json:"itinerary,omitempty"`
}

// AdviceResponse is always populated: Response is never empty and the slices are never nil.
type AdviceResponse struct {
	Response     string   `json:"response"`
	Suggestions  []string `json:"suggestions"`
	CulturalTips []string `json:"culturalTips"`
}

// ItineraryItem is the part of a scheduled itinerary entry that prompts rely on.
type ItineraryItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ItemID    int64  `json:"itemId"`
	Day       int    `json:"day"`
	TimeOfDay string `json:"timeOfDay"`
	Duration  string `json:"duration,omitempty"`
}

// Status maps provider names to their current availability.
type Status map[string]bool

// Operation names the advice producing call being orchestrated.
type Operation string

const (
	OperationAdvice    Operation = "advice"
	OperationInsights  Operation = "insights"
	OperationItinerary Operation = "itinerary_description"
)

const maxInsights = 5
