package user

import (
	"context"
	"time"
)

// Preferences is a traveller's stored preference tokens.
type Preferences struct {
	UserID      int64     `json:"userId"`
	Preferences []string  `json:"preferences"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository persists traveller preferences.
type Repository interface {
	Upsert(ctx context.Context, userID int64, preferences []string) (Preferences, error)
	Get(ctx context.Context, userID int64) (Preferences, bool, error)
}
