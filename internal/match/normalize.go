package match

import "strings"

// NormalizeIdent folds case and drops '_', '-' and spaces so that
// "order_id", "OrderID" and "order-id" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Closest returns the candidate nearest to name after normalization.
// Candidates further away than half of name's length are not suggested.
func Closest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)
	limit := max(len(norm)/2, 1)

	best, bestDistance := "", limit+1
	for _, candidate := range candidates {
		d := Levenshtein(norm, NormalizeIdent(candidate))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best, best != ""
}
