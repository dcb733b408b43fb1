// Package fuzzy finds the nearest champion name by edit distance.
package fuzzy

import (
	"golang.org/x/text/cases"
)

// Distance is the Levenshtein distance between the case-folded forms of a
// and b: the minimum number of single rune insertions, deletions or
// substitutions turning one into the other.
func Distance(a, b string) int {
	fold := cases.Fold()
	ra := []rune(fold.String(a))
	rb := []rune(fold.String(b))

	// Two rolling rows of the (len(a)+1) x (len(b)+1) table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], curr[j-1], prev[j])
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Closest returns the catalog entry nearest to name. Ties keep the earliest
// entry. ok is false only for an empty catalog.
func Closest(name string, catalog []string) (match string, distance int, ok bool) {
	for _, candidate := range catalog {
		d := Distance(name, candidate)
		if !ok || d < distance {
			match, distance, ok = candidate, d, true
		}
	}
	return match, distance, ok
}
