package catalog

// Catalog is the read-only collection of seeded travel records.
// Implementations must return copies so callers cannot mutate the seed.
type Catalog interface {
	Destinations() []Destination
	Destination(id int64) (Destination, bool)
	DestinationsByRegion(region string) []Destination
	SitesByDestination(destinationID int64) []CulturalSite
	SitesByCategory(category string) []CulturalSite
	Sites() []CulturalSite
	RestaurantsByDestination(destinationID int64) []Restaurant
	RestaurantsByCuisine(cuisine string) []Restaurant
	Restaurants() []Restaurant
	Regions() []Region
	// Site and Restaurant resolve ids referenced by itinerary items.
	Site(id int64) (CulturalSite, bool)
	Restaurant(id int64) (Restaurant, bool)
}
