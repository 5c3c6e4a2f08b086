package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
)

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer("")

	out, err := r.Render(itinerary.Document{
		Title:       "Prague & Florence",
		Description: "Gothic spires, Renaissance galleries and a pint at Lokál.",
		Days: []itinerary.DayPlan{
			{Day: 1, Entries: []itinerary.Entry{
				{TimeOfDay: itinerary.Morning, Kind: itinerary.ItemCulturalSite, Label: "Prague Castle", Duration: "Half day"},
				{TimeOfDay: itinerary.Evening, Kind: itinerary.ItemRestaurant, Label: "Lokál (Czech)"},
			}},
		},
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.Equal(t, "application/pdf", r.ContentType())
	require.Equal(t, "pdf", r.Extension())
}

func TestRenderEmptyDocument(t *testing.T) {
	out, err := NewRenderer("Test").Render(itinerary.Document{Title: "Empty"})
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestSlotLabel(t *testing.T) {
	require.Equal(t, "Afternoon", slotLabel(itinerary.Afternoon))
	require.Equal(t, "", slotLabel(""))
}
