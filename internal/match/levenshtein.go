package match

// editDistance is the weighted Levenshtein distance between a and b.
// Insertions and deletions cost 1; replacing x with y costs subst(x, y),
// which must lie in [0, 1]. Two rows of the matrix are kept.
func editDistance[E any](a, b []E, subst func(x, y E) float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]float64, len(a)+1)
	curr := make([]float64, len(a)+1)

	for i := range prev {
		prev[i] = float64(i)
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = float64(j)

		for i := 1; i <= len(a); i++ {
			curr[i] = min(
				prev[i]+1,
				curr[i-1]+1,
				prev[i-1]+subst(a[i-1], b[j-1]),
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func runeCost(x, y rune) float64 {
	if x == y {
		return 0
	}

	return 1
}

// Similarity scores a against b in [0, 1]: one minus the Levenshtein
// distance over the longer rune length. Two empty strings score 1.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - editDistance(ra, rb, runeCost)/float64(longest)
}

// TokenSimilarity scores two method names word by word in [0, 1]. Words are
// first mapped onto the primitive vocabulary by CanonicalTokens, so
// "MoveNext" and "Increment" score 1. Replacing one word with another costs
// their dissimilarity, so a misspelt word costs less than a missing one.
func TokenSimilarity(a, b string) float64 {
	ta, tb := CanonicalTokens(a), CanonicalTokens(b)

	longest := max(len(ta), len(tb))
	if longest == 0 {
		return 1
	}

	d := editDistance(ta, tb, func(x, y string) float64 {
		return 1 - Similarity(x, y)
	})

	return 1 - d/float64(longest)
}
