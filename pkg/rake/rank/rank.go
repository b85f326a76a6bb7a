// Package rank orders scored candidates for final output.
package rank

import "sort"

// KeywordScore pairs a candidate keyword with its score.
type KeywordScore struct {
	Keyword string
	Score   float64
}

// FromMap converts a candidate score table into a slice of KeywordScore.
// The slice order is unspecified until SortByScore is applied.
func FromMap(scores map[string]float64) []KeywordScore {
	keywords := make([]KeywordScore, 0, len(scores))
	for keyword, score := range scores {
		keywords = append(keywords, KeywordScore{Keyword: keyword, Score: score})
	}
	return keywords
}

// SortByScore sorts keywords by score descending. Equal scores are ordered
// lexicographically ascending on the keyword text, so output order never
// depends on map iteration order.
func SortByScore(keywords []KeywordScore) {
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})
}

// Top returns the k highest-ranked entries of an already-sorted slice.
// It returns the slice unchanged when k is negative or exceeds its length.
func Top(keywords []KeywordScore, k int) []KeywordScore {
	if k < 0 || k >= len(keywords) {
		return keywords
	}
	return keywords[:k]
}
