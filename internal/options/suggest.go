package options

import (
	"sort"

	"github.com/agext/levenshtein"
)

// Suggest returns the candidate closest to word, or "" when nothing is
// close enough to be a plausible typo.
func Suggest(word string, candidates []string) string {
	limit := 1 + len(word)/4
	if limit > 3 {
		limit = 3
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestDist := "", limit+1
	for _, c := range sorted {
		if c == word {
			continue
		}
		if d := levenshtein.Distance(word, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
