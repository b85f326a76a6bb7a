// Package phrase splits raw text into candidate phrases: maximal runs of
// non-stopword tokens bounded by punctuation or stopwords.
package phrase

import (
	"regexp"
	"strings"

	"github.com/cognicore/rake/pkg/rake/stopwords"
)

// punctPattern matches any Unicode punctuation except an in-word hyphen.
// A hyphen with whitespace on both sides is a hard separator; a hyphenated
// compound word stays attached.
const punctPattern = `[^\P{P}-]|\s+-\s+`

var punctRe = regexp.MustCompile(punctPattern)

// Phrase is an ordered run of tokens taken verbatim from the source text.
// Tokens keep their original case; numeric tokens are retained in place.
// A Phrase is never empty.
type Phrase []string

// Key returns the candidate key for the phrase: all tokens joined with
// single spaces, original case and order.
func (p Phrase) Key() string {
	return strings.Join(p, " ")
}

// Segmenter splits text into phrases. It borrows the stopword set from the
// caller and never mutates it, so one Segmenter may serve concurrent
// extractions.
type Segmenter struct {
	stops stopwords.StopWords
}

// NewSegmenter creates a segmenter over the given stopword set.
func NewSegmenter(stops stopwords.StopWords) *Segmenter {
	return &Segmenter{stops: stops}
}

// Segment splits text into candidate phrases in source order.
//
// Text is first cut into segments at every punctuation-rule match, then each
// segment is split on whitespace. A token whose lowercase form is a stopword
// closes the current phrase; any other token is appended with its original
// case. The phrase buffer is also closed at the end of each segment.
// Segments made up entirely of stopwords contribute nothing.
func (s *Segmenter) Segment(text string) []Phrase {
	var phrases []Phrase
	for _, segment := range punctRe.Split(text, -1) {
		if segment == "" {
			continue
		}
		var buf Phrase
		for _, word := range strings.Fields(segment) {
			if s.stops.Contains(word) {
				if len(buf) > 0 {
					phrases = append(phrases, buf)
					buf = nil
				}
				continue
			}
			buf = append(buf, word)
		}
		if len(buf) > 0 {
			phrases = append(phrases, buf)
		}
	}
	return phrases
}
