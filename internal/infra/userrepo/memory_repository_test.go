package userrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryUpsert(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, found)

	input := []string{"art", "history"}
	stored, err := repo.Upsert(ctx, 1, input)
	require.NoError(t, err)
	require.Equal(t, input, stored.Preferences)
	input[0] = "mutated"

	_, err = repo.Upsert(ctx, 1, append([]string{"jazz"}, stored.Preferences...))
	require.NoError(t, err)

	got, found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"jazz", "art", "history"}, got.Preferences)
	require.False(t, got.UpdatedAt.IsZero())
}
