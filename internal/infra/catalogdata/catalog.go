package catalogdata

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/culture-compass/internal/domain/catalog"
)

//go:embed seed.yaml
var embeddedSeed []byte

type seedFile struct {
	Destinations  []catalog.Destination  `yaml:"destinations"`
	CulturalSites []catalog.CulturalSite `yaml:"culturalSites"`
	Restaurants   []catalog.Restaurant   `yaml:"restaurants"`
	Regions       []catalog.Region       `yaml:"regions"`
}

// MemoryCatalog serves seed records from process memory.
type MemoryCatalog struct {
	destinations []catalog.Destination
	sites        []catalog.CulturalSite
	restaurants  []catalog.Restaurant
	regions      []catalog.Region
}

// Load builds a catalog from seedPath, or from the embedded seed when the path is empty.
func Load(seedPath string) (*MemoryCatalog, error) {
	data := embeddedSeed
	if path := strings.TrimSpace(seedPath); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog seed: %w", err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes a YAML seed document.
func Parse(data []byte) (*MemoryCatalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	if err := validateSeed(seed); err != nil {
		return nil, err
	}
	return &MemoryCatalog{
		destinations: seed.Destinations,
		sites:        seed.CulturalSites,
		restaurants:  seed.Restaurants,
		regions:      seed.Regions,
	}, nil
}

func validateSeed(seed seedFile) error {
	known := make(map[int64]struct{}, len(seed.Destinations))
	for _, dest := range seed.Destinations {
		if dest.ID <= 0 || strings.TrimSpace(dest.Name) == "" {
			return fmt.Errorf("catalog seed: destination %d is missing id or name", dest.ID)
		}
		if _, dup := known[dest.ID]; dup {
			return fmt.Errorf("catalog seed: duplicate destination id %d", dest.ID)
		}
		known[dest.ID] = struct{}{}
	}
	for _, site := range seed.CulturalSites {
		if _, ok := known[site.DestinationID]; !ok {
			return fmt.Errorf("catalog seed: site %q references unknown destination %d", site.Name, site.DestinationID)
		}
	}
	for _, r := range seed.Restaurants {
		if _, ok := known[r.DestinationID]; !ok {
			return fmt.Errorf("catalog seed: restaurant %q references unknown destination %d", r.Name, r.DestinationID)
		}
	}
	return nil
}

// Destinations implements catalog.Catalog.
func (c *MemoryCatalog) Destinations() []catalog.Destination {
	return filter(c.destinations, func(catalog.Destination) bool { return true }, cloneDestination)
}

// Destination implements catalog.Catalog.
func (c *MemoryCatalog) Destination(id int64) (catalog.Destination, bool) {
	for _, dest := range c.destinations {
		if dest.ID == id {
			return cloneDestination(dest), true
		}
	}
	return catalog.Destination{}, false
}

// DestinationsByRegion implements catalog.Catalog.
func (c *MemoryCatalog) DestinationsByRegion(region string) []catalog.Destination {
	return filter(c.destinations, func(d catalog.Destination) bool { return sameFold(d.Region, region) }, cloneDestination)
}

// Sites implements catalog.Catalog.
func (c *MemoryCatalog) Sites() []catalog.CulturalSite {
	return filter(c.sites, func(catalog.CulturalSite) bool { return true }, cloneSite)
}

// Site implements catalog.Catalog.
func (c *MemoryCatalog) Site(id int64) (catalog.CulturalSite, bool) {
	for _, site := range c.sites {
		if site.ID == id {
			return cloneSite(site), true
		}
	}
	return catalog.CulturalSite{}, false
}

// SitesByDestination implements catalog.Catalog.
func (c *MemoryCatalog) SitesByDestination(destinationID int64) []catalog.CulturalSite {
	return filter(c.sites, func(s catalog.CulturalSite) bool { return s.DestinationID == destinationID }, cloneSite)
}

// SitesByCategory implements catalog.Catalog.
func (c *MemoryCatalog) SitesByCategory(category string) []catalog.CulturalSite {
	return filter(c.sites, func(s catalog.CulturalSite) bool { return sameFold(s.Category, category) }, cloneSite)
}

// Restaurants implements catalog.Catalog.
func (c *MemoryCatalog) Restaurants() []catalog.Restaurant {
	return filter(c.restaurants, func(catalog.Restaurant) bool { return true }, cloneRestaurant)
}

// Restaurant implements catalog.Catalog.
func (c *MemoryCatalog) Restaurant(id int64) (catalog.Restaurant, bool) {
	for _, r := range c.restaurants {
		if r.ID == id {
			return cloneRestaurant(r), true
		}
	}
	return catalog.Restaurant{}, false
}

// RestaurantsByDestination implements catalog.Catalog.
func (c *MemoryCatalog) RestaurantsByDestination(destinationID int64) []catalog.Restaurant {
	return filter(c.restaurants, func(r catalog.Restaurant) bool { return r.DestinationID == destinationID }, cloneRestaurant)
}

// RestaurantsByCuisine implements catalog.Catalog.
func (c *MemoryCatalog) RestaurantsByCuisine(cuisine string) []catalog.Restaurant {
	return filter(c.restaurants, func(r catalog.Restaurant) bool { return sameFold(r.Cuisine, cuisine) }, cloneRestaurant)
}

// Regions implements catalog.Catalog.
func (c *MemoryCatalog) Regions() []catalog.Region {
	return filter(c.regions, func(catalog.Region) bool { return true }, cloneRegion)
}

func filter[T any](items []T, keep func(T) bool, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, clone(item))
		}
	}
	return out
}

func sameFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func cloneDestination(d catalog.Destination) catalog.Destination {
	d.CulturalTags = cloneStrings(d.CulturalTags)
	d.BestSeasons = cloneStrings(d.BestSeasons)
	if d.Coordinates != nil {
		coords := *d.Coordinates
		d.Coordinates = &coords
	}
	d.Score = cloneScore(d.Score)
	return d
}

func cloneSite(s catalog.CulturalSite) catalog.CulturalSite {
	s.Tags = cloneStrings(s.Tags)
	s.Score = cloneScore(s.Score)
	return s
}

func cloneRestaurant(r catalog.Restaurant) catalog.Restaurant {
	r.Tags = cloneStrings(r.Tags)
	r.Score = cloneScore(r.Score)
	return r
}

func cloneRegion(r catalog.Region) catalog.Region {
	r.TopDestinations = cloneStrings(r.TopDestinations)
	r.CulturalHighlights = cloneStrings(r.CulturalHighlights)
	return r
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}

func cloneScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}

var _ catalog.Catalog = (*MemoryCatalog)(nil)
