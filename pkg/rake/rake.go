// Package rake extracts keywords from free text using the RAKE heuristic:
// candidate phrases are runs of non-stopword tokens bounded by punctuation
// or stopwords, words are scored by frequency and co-occurrence degree over
// the whole document, and each candidate scores the sum of its word scores.
package rake

import (
	"regexp"

	"github.com/cognicore/rake/pkg/rake/phrase"
	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/score"
	"github.com/cognicore/rake/pkg/rake/stopwords"
)

// numberPattern matches a numeric token: an optional sign, digits, and an
// optional decimal or grouping mark. The match is unanchored — a token
// containing a number anywhere counts as numeric.
const numberPattern = `-?\p{N}+[./٫,']?\p{N}*`

var numberRe = regexp.MustCompile(numberPattern)

// Rake is a configured extraction engine. The stopword set and the fixed
// pattern rules are immutable after construction, so a single Rake may be
// shared across goroutines; each Run allocates its own intermediate state.
type Rake struct {
	segmenter *phrase.Segmenter
	scorer    *score.Scorer
}

// New creates an engine over the given stopword set.
func New(stops stopwords.StopWords) *Rake {
	return &Rake{
		segmenter: phrase.NewSegmenter(stops),
		scorer:    score.NewScorer(IsNumber),
	}
}

// IsNumber reports whether a token is numeric under the engine's fixed
// number pattern.
func IsNumber(token string) bool {
	return numberRe.MatchString(token)
}

// Run extracts keywords from text and returns them sorted by score
// descending, ties broken lexicographically on the keyword. Empty or
// whitespace-only input yields an empty result.
func (r *Rake) Run(text string) []rank.KeywordScore {
	phrases := r.segmenter.Segment(text)
	words := r.scorer.WordScores(phrases)
	candidates := r.scorer.CandidateScores(phrases, words)

	keywords := rank.FromMap(candidates)
	rank.SortByScore(keywords)
	return keywords
}

// RunTop extracts keywords and returns at most k of the highest-scoring
// candidates.
func (r *Rake) RunTop(text string, k int) []rank.KeywordScore {
	return rank.Top(r.Run(text), k)
}
