// Package score implements the two scoring passes of keyword extraction:
// a global word score table over every phrase in a document, then a sum
// score per candidate phrase.
package score

import (
	"github.com/cognicore/rake/pkg/rake/phrase"
)

// Scorer computes word and candidate scores. The number predicate is fixed
// at construction and must be stateless; tokens it accepts are excluded from
// word scoring and contribute nothing to candidate sums.
type Scorer struct {
	isNumber func(string) bool
}

// NewScorer creates a scorer with the given number predicate.
func NewScorer(isNumber func(string) bool) *Scorer {
	return &Scorer{isNumber: isNumber}
}

// WordScores computes a score for every non-numeric word across all phrases.
//
// A word's frequency counts its occurrences; its degree counts co-occurrence
// with the other non-numeric words of each phrase instance it appears in.
// The score is (degree + frequency) / frequency. Phrases consisting only of
// numeric tokens are skipped entirely. The result depends only on aggregate
// counts, not on traversal order.
func (s *Scorer) WordScores(phrases []phrase.Phrase) map[string]float64 {
	freq := make(map[string]int)
	degree := make(map[string]int)

	for _, p := range phrases {
		effectiveLen := 0
		for _, word := range p {
			if !s.isNumber(word) {
				effectiveLen++
			}
		}
		if effectiveLen == 0 {
			continue
		}
		for _, word := range p {
			if s.isNumber(word) {
				continue
			}
			freq[word]++
			degree[word] += effectiveLen - 1
		}
	}

	scores := make(map[string]float64, len(freq))
	for word, f := range freq {
		scores[word] = float64(degree[word]+f) / float64(f)
	}
	return scores
}

// CandidateScores computes a score for every candidate phrase: the sum of
// the word scores of its non-numeric tokens. Numeric tokens contribute 0 and
// never cause a lookup failure. The candidate key joins all tokens — numeric
// ones included — with single spaces, original case.
//
// When the same key occurs more than once, the latest occurrence overwrites
// the previous value. Word scores are global, so every occurrence of an
// identical key sums to the same value; scores are never accumulated across
// occurrences.
func (s *Scorer) CandidateScores(phrases []phrase.Phrase, words map[string]float64) map[string]float64 {
	candidates := make(map[string]float64, len(phrases))
	for _, p := range phrases {
		total := 0.0
		for _, word := range p {
			if s.isNumber(word) {
				continue
			}
			total += words[word]
		}
		candidates[p.Key()] = total
	}
	return candidates
}
