package recommendation

import "github.com/yanqian/culture-compass/internal/domain/catalog"

// Config tunes the recommendation service.
type Config struct {
	DefaultLimit int
	TrendingSize int
}

// Request carries the user's preference tokens.
type Request struct {
	Preferences []string `json:"preferences"`
	Limit       int      `json:"limit"`
}

// Result groups matched catalog records by kind.
type Result struct {
	Destinations  []catalog.Destination  `json:"destinations"`
	CulturalSites []catalog.CulturalSite `json:"culturalSites"`
	Restaurants   []catalog.Restaurant   `json:"restaurants"`
}

// TrendingPreference is a frequently requested preference token.
type TrendingPreference struct {
	Preference string `json:"preference"`
	Count      int64  `json:"count"`
}

// Profile buckets preference tokens into cultural domains.
type Profile struct {
	CulturalDomains []string         `json:"culturalDomains"`
	Preferences     ProfileByDomains `json:"preferences"`
}

// ProfileByDomains lists the tokens that fell into each domain.
type ProfileByDomains struct {
	Culinary   []string `json:"culinary"`
	VisualArts []string `json:"visual_arts"`
	Music      []string `json:"music"`
	History    []string `json:"history"`
	Nature     []string `json:"nature"`
	Traditions []string `json:"traditions"`
}
