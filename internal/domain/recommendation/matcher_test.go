package recommendation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	name   string
	tags   []string
	score  float64
	scored bool
}

func (i item) MatchTags() []string { return i.tags }

func (i item) RelevanceScore() (float64, bool) { return i.score, i.scored }

func names(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}

func TestMatchEitherDirectionSubstring(t *testing.T) {
	items := []item{
		{name: "murals", tags: []string{"street art"}},
		{name: "cooking", tags: []string{"cuisine"}},
		{name: "opera", tags: []string{"Performing Arts"}},
	}

	require.Equal(t, []string{"murals", "opera"}, names(Match(items, []string{"ART"}, 0)))
	require.Equal(t, []string{"cooking"}, names(Match(items, []string{"italian cuisine"}, 0)))
}

func TestMatchEmptyPreferencesMatchNothing(t *testing.T) {
	items := []item{{name: "a", tags: []string{"art"}}}

	require.Empty(t, Match(items, nil, 0))
	require.NotNil(t, Match(items, nil, 0))
	require.Empty(t, Match(items, []string{"", "   "}, 0))
}

func TestMatchUnknownTokensContributeNothing(t *testing.T) {
	items := []item{{name: "a", tags: []string{"art"}}}
	require.Empty(t, Match(items, []string{"nonexistent-xyz"}, 0))
	require.Equal(t, []string{"a"}, names(Match(items, []string{"nonexistent-xyz", "art"}, 0)))
}

func TestMatchOrdersScoredFirst(t *testing.T) {
	items := []item{
		{name: "plain-1", tags: []string{"art"}},
		{name: "low", tags: []string{"art"}, score: 0.5, scored: true},
		{name: "plain-2", tags: []string{"art"}},
		{name: "high", tags: []string{"art"}, score: 0.9, scored: true},
	}

	require.Equal(t, []string{"high", "low", "plain-1", "plain-2"}, names(Match(items, []string{"art"}, 0)))
}

func TestMatchRespectsLimit(t *testing.T) {
	items := make([]item, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, item{name: fmt.Sprintf("item-%d", i), tags: []string{"history"}})
	}

	require.Len(t, Match(items, []string{"history"}, 3), 3)
	require.Len(t, Match(items, []string{"history"}, 0), DefaultLimit)
	require.Len(t, Match(items, []string{"history"}, -1), DefaultLimit)
	require.Equal(t, "item-0", Match(items, []string{"history"}, 1)[0].name)
}
