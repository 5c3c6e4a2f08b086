package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "kyoto-weekend", Slugify("Kyoto Weekend!", "x"))
	require.Equal(t, "caf-crawl-2024", Slugify("  Café crawl -- 2024 ", "x"))
	require.Equal(t, "itinerary", Slugify("日本", "itinerary"))
}

func TestNowUTC(t *testing.T) {
	require.Equal(t, time.UTC, NowUTC().Location())
}

func TestMillisSince(t *testing.T) {
	require.GreaterOrEqual(t, MillisSince(time.Now().Add(-20*time.Millisecond)), int64(20))
}
