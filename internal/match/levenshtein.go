package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	// two rows of the matrix are enough
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
