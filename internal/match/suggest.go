package match

import (
	"sort"
)

// MinSuggestScore is the similarity below which names are not suggested.
const MinSuggestScore = 0.5

// Suggest returns up to limit known names closest to name, best first. Ties
// keep the order of known.
func Suggest(name string, known []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var candidates []scored

	for _, k := range known {
		if k == name {
			continue
		}

		score := NormalizedLevenshteinScore(name, k)
		if score >= MinSuggestScore {
			candidates = append(candidates, scored{k, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}

	return out
}
