package recommendation

import "context"

// TrendStore counts how often preference tokens are requested.
type TrendStore interface {
	Increment(ctx context.Context, canonical, display string) error
	Top(ctx context.Context, limit int) ([]TrendingPreference, error)
}
