package itineraryrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
)

func TestMemoryRepositoryLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, itinerary.Itinerary{UserID: 3, Name: "Florence"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.NotNil(t, created.Items)
	require.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, itinerary.Itinerary{UserID: 4, Name: "Kyoto"})
	require.NoError(t, err)

	ok, err := repo.UpdateItems(ctx, created.ID, []itinerary.Item{{ID: "a", Type: itinerary.ItemCulturalSite, ItemID: 5, Day: 1, TimeOfDay: itinerary.Morning}})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.UpdateItems(ctx, 99, nil)
	require.NoError(t, err)
	require.False(t, ok)

	got, found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 1)

	got.Items[0].Day = 9
	again, _, _ := repo.Get(ctx, created.ID)
	require.Equal(t, 1, again.Items[0].Day)

	mine, err := repo.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Florence", mine[0].Name)

	_, found, err = repo.Get(ctx, 42)
	require.NoError(t, err)
	require.False(t, found)
}

func TestItemsCodec(t *testing.T) {
	payload, err := encodeItems(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(payload))

	items, err := decodeItems([]byte(`[{"id":"x","type":"restaurant","itemId":2,"day":1,"timeOfDay":"evening","duration":"2 hours"}]`))
	require.NoError(t, err)
	require.Equal(t, []itinerary.Item{{ID: "x", Type: itinerary.ItemRestaurant, ItemID: 2, Day: 1, TimeOfDay: itinerary.Evening, Duration: "2 hours"}}, items)

	empty, err := decodeItems([]byte("null"))
	require.NoError(t, err)
	require.NotNil(t, empty)

	_, err = decodeItems([]byte("{"))
	require.Error(t, err)
}

func TestMemoryRepositoryKeepsEmptyItemsNonNil(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, itinerary.Itinerary{UserID: 1, Name: "Empty", Items: []itinerary.Item{}})
	require.NoError(t, err)
	require.NotNil(t, created.Items)

	ok, err := repo.UpdateItems(ctx, created.ID, []itinerary.Item{})
	require.NoError(t, err)
	require.True(t, ok)

	got, found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Items)
}
