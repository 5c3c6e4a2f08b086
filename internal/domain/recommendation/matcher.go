package recommendation

import (
	"sort"
	"strings"
)

// DefaultLimit bounds a match result when the caller gives no positive limit.
const DefaultLimit = 10

// Candidate is anything that can be matched against preference tokens.
type Candidate interface {
	MatchTags() []string
	RelevanceScore() (float64, bool)
}

// Match keeps items where at least one tag and one preference contain each
// other, ignoring case. Scored items sort first by descending score; the rest
// keep declaration order. Empty preferences match nothing.
func Match[T Candidate](items []T, preferences []string, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	tokens := normalizeTokens(preferences)
	out := make([]T, 0)
	if len(tokens) == 0 {
		return out
	}

	for _, item := range items {
		if matchesAny(item.MatchTags(), tokens) {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, iScored := out[i].RelevanceScore()
		sj, jScored := out[j].RelevanceScore()
		switch {
		case iScored && jScored:
			return si > sj
		case iScored != jScored:
			return iScored
		default:
			return false
		}
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesAny(tags, tokens []string) bool {
	for _, raw := range tags {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		for _, token := range tokens {
			if strings.Contains(tag, token) || strings.Contains(token, tag) {
				return true
			}
		}
	}
	return false
}

func normalizeTokens(preferences []string) []string {
	tokens := make([]string, 0, len(preferences))
	seen := make(map[string]struct{}, len(preferences))
	for _, pref := range preferences {
		token := strings.ToLower(strings.TrimSpace(pref))
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
