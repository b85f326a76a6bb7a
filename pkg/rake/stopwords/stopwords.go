package stopwords

import (
	"bufio"
	"os"
	"strings"
)

// StopWords is a case-normalized stopword membership set. Words are stored
// lowercased; lookups lowercase their argument before testing. The set is
// built once and shared by reference with the engine — it must not be
// modified while an extraction is running.
type StopWords map[string]struct{}

// FromSlice builds a stopword set from a list of words.
func FromSlice(words []string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// FromFile loads a stopword set from a file with one word per line.
// Blank lines and lines starting with '#' are skipped.
func FromFile(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := make(StopWords)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Contains reports whether word is a stopword. The check is
// case-insensitive.
func (s StopWords) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Merge adds every word from other into s and returns s.
func (s StopWords) Merge(other StopWords) StopWords {
	for w := range other {
		s[w] = struct{}{}
	}
	return s
}

// Len returns the number of stopwords in the set.
func (s StopWords) Len() int { return len(s) }
