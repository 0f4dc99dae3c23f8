package match

import (
	"sort"
)

// Default thresholds for method name suggestions.
const (
	DefaultMinScore       = 0.6
	DefaultMaxSuggestions = 3
)

// Candidate is a scored suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every name against want with TokenSimilarity, so a name
// built from synonyms of want's words ("MoveNext" for "Increment") scores
// 1.0. The result is sorted by descending score, then by name.
func Rank(want string, names []string) []Candidate {
	out := make([]Candidate, 0, len(names))
	for _, name := range names {
		if name == want {
			continue
		}

		out = append(out, Candidate{Name: name, Score: TokenSimilarity(want, name)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns up to limit names from names that plausibly mean want.
func Suggest(want string, names []string, minScore float64, limit int) []string {
	var res []string
	for _, c := range Rank(want, names) {
		if c.Score < minScore || len(res) >= limit {
			break
		}

		res = append(res, c.Name)
	}

	return res
}
