package match

import (
	"cmp"
	"slices"
)

// MinSuggestionScore is the similarity below which Closest drops candidates.
const MinSuggestionScore = 0.5

// Closest returns up to limit candidates most similar to name, best first.
// Candidates scoring under MinSuggestionScore are dropped; ties keep input
// order.
func Closest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if s := NormalizedLevenshteinScore(name, c); s >= MinSuggestionScore {
			ranked = append(ranked, scored{c, s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, len(ranked))
	for i, r := range ranked {
		res[i] = r.name
	}

	return res
}
