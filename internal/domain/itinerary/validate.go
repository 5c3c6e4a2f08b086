package itinerary

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func validateItems(items []Item) error {
	for i, item := range items {
		switch item.Type {
		case ItemDestination, ItemCulturalSite, ItemRestaurant, ItemActivity:
		default:
			return fmt.Errorf("item %d: unknown type %q", i, item.Type)
		}
		switch item.TimeOfDay {
		case Morning, Afternoon, Evening:
		default:
			return fmt.Errorf("item %d: unknown timeOfDay %q", i, item.TimeOfDay)
		}
		if item.Day < 1 {
			return fmt.Errorf("item %d: day must be at least 1", i)
		}
		if item.ItemID <= 0 && item.Type != ItemActivity {
			return fmt.Errorf("item %d: itemId is required", i)
		}
	}
	return nil
}

// normalizeItems trims free text and assigns ids to items that lack one.
func normalizeItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Duration = strings.TrimSpace(item.Duration)
		out = append(out, item)
	}
	return out
}

func slotRank(slot TimeOfDay) int {
	switch slot {
	case Morning:
		return 0
	case Afternoon:
		return 1
	default:
		return 2
	}
}
