// Package similarity finds the closest known name for a misspelled one.
package similarity

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the minimum Ratio for a candidate to be suggested as
// the intended spelling. At 0.6 a name may differ from its match in up to
// 40% of its characters.
const DefaultThreshold = 0.6

// Ratio returns a similarity score in [0, 1] derived from the Levenshtein
// distance normalized by the longer string's rune count. Identical strings
// score 1.
func Ratio(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Closest returns the candidate most similar to name when its Ratio is at
// least threshold. Ties resolve to the earliest candidate.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	best := ""
	bestScore := -1.0

	for _, candidate := range candidates {
		if score := Ratio(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < threshold {
		return "", false
	}

	return best, true
}
