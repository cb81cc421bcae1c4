package match

import (
	"sort"
	"strings"
)

const (
	// DefaultLimit is the number of suggestions shown when none is asked for.
	DefaultLimit = 5
	// MinScore drops candidates that share little more than their length.
	MinScore = 0.4

	substringBonus = 0.25
	tokenBonus     = 0.1
)

// Suggestion is one ranked candidate.
type Suggestion struct {
	EditorID string
	Score    float64
}

// Score rates how close candidate is to query, higher is closer. Scores are
// not capped at 1: substring and shared-word bonuses stack on top of the
// edit-distance similarity.
func Score(query, candidate string) float64 {
	q, c := NormalizeEditorID(query), NormalizeEditorID(candidate)
	if q == "" || c == "" {
		return 0
	}

	score := Similarity(q, c)
	if strings.Contains(c, q) || strings.Contains(q, c) {
		score += substringBonus
	}

	score += tokenBonus * float64(sharedTokens(query, candidate))

	return score
}

// Suggest returns up to limit candidates scoring at least MinScore, best
// first. Ties are broken alphabetically. A non-positive limit means
// DefaultLimit.
func Suggest(query string, candidates []string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var ranked []Suggestion

	for _, c := range candidates {
		s := Score(query, c)
		if s < MinScore {
			continue
		}

		ranked = append(ranked, Suggestion{EditorID: c, Score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].EditorID < ranked[j].EditorID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func sharedTokens(a, b string) int {
	seen := make(map[string]struct{})
	for _, t := range Tokens(a) {
		seen[t] = struct{}{}
	}

	n := 0

	for _, t := range Tokens(b) {
		if _, ok := seen[t]; ok {
			n++
			delete(seen, t)
		}
	}

	return n
}
