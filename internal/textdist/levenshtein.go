// Package textdist computes string edit distance for lookalike-domain
// detection (typosquats such as paypa1.com vs paypal.com).
package textdist

import (
	"strings"
)

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions or substitutions
// needed to transform one into the other. Comparison is case-insensitive.
//
// The dynamic program keeps only two rows sized by the shorter string, so
// auxiliary space is O(min(len(a), len(b))) and time is O(len(a)*len(b)).
func Distance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	// Iterate the shorter string as the row dimension
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := 0; i <= len(ra); i++ {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// IsLookalike reports whether a and b are distinct strings within the given
// edit distance of each other. Distance 0 means identical, not a lookalike.
func IsLookalike(a, b string, threshold int) bool {
	d := Distance(a, b)
	return d > 0 && d <= threshold
}
