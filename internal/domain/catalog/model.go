package catalog

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Destination is a city or site-level travel destination.
type Destination struct {
	ID           int64        `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Country      string       `json:"country" yaml:"country"`
	Region       string       `json:"region" yaml:"region"`
	Description  string       `json:"description" yaml:"description"`
	ImageURL     string       `json:"imageUrl,omitempty" yaml:"imageUrl"`
	CulturalTags []string     `json:"culturalTags" yaml:"culturalTags"`
	BestSeasons  []string     `json:"bestSeasons" yaml:"bestSeasons"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" yaml:"coordinates"`
	Duration     string       `json:"duration,omitempty" yaml:"duration"`
	Score        *float64     `json:"score,omitempty" yaml:"score"`
}

// CulturalSite is a museum, temple, monument or similar attraction.
type CulturalSite struct {
	ID            int64    `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	DestinationID int64    `json:"destinationId" yaml:"destinationId"`
	Description   string   `json:"description" yaml:"description"`
	ImageURL      string   `json:"imageUrl,omitempty" yaml:"imageUrl"`
	Category      string   `json:"category" yaml:"category"`
	Duration      string   `json:"duration,omitempty" yaml:"duration"`
	Tags          []string `json:"tags" yaml:"tags"`
	Score         *float64 `json:"score,omitempty" yaml:"score"`
}

// Restaurant is a dining recommendation tied to a destination.
type Restaurant struct {
	ID            int64    `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	DestinationID int64    `json:"destinationId" yaml:"destinationId"`
	Description   string   `json:"description" yaml:"description"`
	ImageURL      string   `json:"imageUrl,omitempty" yaml:"imageUrl"`
	Cuisine       string   `json:"cuisine" yaml:"cuisine"`
	PriceRange    string   `json:"priceRange" yaml:"priceRange"`
	Rating        int      `json:"rating" yaml:"rating"`
	Tags          []string `json:"tags" yaml:"tags"`
	Score         *float64 `json:"score,omitempty" yaml:"score"`
}

// Region is a world map region summary.
type Region struct {
	Name               string      `json:"name" yaml:"name"`
	Coordinates        Coordinates `json:"coordinates" yaml:"coordinates"`
	Description        string      `json:"description" yaml:"description"`
	TopDestinations    []string    `json:"topDestinations" yaml:"topDestinations"`
	CulturalHighlights []string    `json:"culturalHighlights" yaml:"culturalHighlights"`
	BestSeason         string      `json:"bestSeason" yaml:"bestSeason"`
}

// MatchTags exposes the cultural tags used for preference matching.
func (d Destination) MatchTags() []string { return d.CulturalTags }

// RelevanceScore returns the curated score when one is set.
func (d Destination) RelevanceScore() (float64, bool) { return scoreOf(d.Score) }

// MatchTags exposes the site tags used for preference matching.
func (s CulturalSite) MatchTags() []string { return s.Tags }

// RelevanceScore returns the curated score when one is set.
func (s CulturalSite) RelevanceScore() (float64, bool) { return scoreOf(s.Score) }

// MatchTags exposes the restaurant tags used for preference matching.
func (r Restaurant) MatchTags() []string { return r.Tags }

// RelevanceScore returns the curated score when one is set.
func (r Restaurant) RelevanceScore() (float64, bool) { return scoreOf(r.Score) }

func scoreOf(score *float64) (float64, bool) {
	if score == nil {
		return 0, false
	}
	return *score, true
}
