package config

import (
	"fmt"

	"github.com/cognicore/rake/pkg/rake/stopwords"
)

// Loader loads configuration files and constructs components
type Loader struct {
	StoplistPath string
}

// Components holds all loaded configuration components
type Components struct {
	StopWords stopwords.StopWords
}

// Load reads the configuration files and returns initialized components.
// A missing stoplist path yields an empty stopword set, not an error.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.StopWords = stopwords.FromSlice(stoplist.Terms)
	} else {
		comp.StopWords = stopwords.FromSlice(nil)
	}

	return comp, nil
}
