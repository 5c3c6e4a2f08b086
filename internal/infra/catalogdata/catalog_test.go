package catalogdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedSeedLoads(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.Len(t, c.Destinations(), 17)
	require.Len(t, c.Sites(), 17)
	require.Len(t, c.Restaurants(), 17)
	require.Len(t, c.Regions(), 5)

	florence, ok := c.Destination(5)
	require.True(t, ok)
	require.Equal(t, "Florence", florence.Name)
	require.Contains(t, florence.CulturalTags, "renaissance")
	score, scored := florence.RelevanceScore()
	require.True(t, scored)
	require.InDelta(t, 0.94, score, 1e-9)
}

func TestFiltersAreCaseInsensitive(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	europe := c.DestinationsByRegion("europe")
	require.Len(t, europe, 4)
	for _, dest := range europe {
		require.Equal(t, "Europe", dest.Region)
	}

	museums := c.SitesByCategory("MUSEUM")
	require.Len(t, museums, 3)

	italian := c.RestaurantsByCuisine("italian")
	require.Len(t, italian, 1)
	require.Equal(t, "Trattoria Mario", italian[0].Name)

	require.Empty(t, c.DestinationsByRegion("Antarctica"))
	require.NotNil(t, c.DestinationsByRegion("Antarctica"))
}

func TestLookupsByDestination(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	sites := c.SitesByDestination(1)
	require.Len(t, sites, 1)
	require.Equal(t, "Fushimi Inari Shrine", sites[0].Name)

	restaurants := c.RestaurantsByDestination(1)
	require.Len(t, restaurants, 1)
	require.Equal(t, "Kikunoi", restaurants[0].Name)

	_, ok := c.Destination(999)
	require.False(t, ok)
	_, ok = c.Site(999)
	require.False(t, ok)
	_, ok = c.Restaurant(999)
	require.False(t, ok)
}

func TestLookupsReturnCopies(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	dest, ok := c.Destination(1)
	require.True(t, ok)
	dest.CulturalTags[0] = "mutated"
	*dest.Score = 0

	again, _ := c.Destination(1)
	require.Equal(t, "temples", again.CulturalTags[0])
	score, _ := again.RelevanceScore()
	require.InDelta(t, 0.96, score, 1e-9)
}

func TestLoadFromPathOverridesEmbeddedSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	doc := `destinations:
  - id: 1
    name: Lisbon
    country: Portugal
    region: Europe
    description: Hilly coastal capital
    culturalTags: [fado, azulejos]
culturalSites: []
restaurants: []
regions: []
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Destinations(), 1)
	require.Equal(t, "Lisbon", c.Destinations()[0].Name)
	_, scored := c.Destinations()[0].RelevanceScore()
	require.False(t, scored)
}

func TestParseRejectsDanglingReferences(t *testing.T) {
	doc := `destinations:
  - id: 1
    name: Lisbon
culturalSites:
  - id: 1
    name: Orphan
    destinationId: 7
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown destination 7")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
