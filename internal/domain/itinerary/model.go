package itinerary

import (
	"context"
	"time"
)

// ItemType is the kind of catalog record an item points at.
type ItemType string

const (
	ItemDestination  ItemType = "destination"
	ItemCulturalSite ItemType = "cultural_site"
	ItemRestaurant   ItemType = "restaurant"
	ItemActivity     ItemType = "activity"
)

// TimeOfDay is the slot an item occupies within a day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// Item is one planned stop.
type Item struct {
	ID        string    `json:"id"`
	Type      ItemType  `json:"type"`
	ItemID    int64     `json:"itemId"`
	Day       int       `json:"day"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	Duration  string    `json:"duration,omitempty"`
}

// Itinerary is a named, stored trip plan.
type Itinerary struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRequest is the payload for a new itinerary.
type CreateRequest struct {
	UserID int64  `json:"userId,omitempty"`
	Name   string `json:"name"`
	Items  []Item `json:"items"`
}

// Export is a rendered itinerary document.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Repository persists itineraries.
type Repository interface {
	Create(ctx context.Context, itinerary Itinerary) (Itinerary, error)
	Get(ctx context.Context, id int64) (Itinerary, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Itinerary, error)
	// UpdateItems reports false when the itinerary does not exist.
	UpdateItems(ctx context.Context, id int64, items []Item) (bool, error)
}

// Document is the renderer's view of an itinerary.
type Document struct {
	Title       string
	Description string
	Days        []DayPlan
}

// DayPlan lists the entries of one day in slot order.
type DayPlan struct {
	Day     int
	Entries []Entry
}

// Entry is a resolved, human readable item.
type Entry struct {
	TimeOfDay TimeOfDay
	Kind      ItemType
	Label     string
	Duration  string
}

// Renderer turns a document into a downloadable file.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}
