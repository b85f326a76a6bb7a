package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu          sync.RWMutex
	extractions map[string]store.Extraction
	order       []string // insertion order of IDs, oldest first
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		extractions: make(map[string]store.Extraction),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveExtraction inserts or replaces a run, keyed by ID.
func (s *Store) SaveExtraction(ctx context.Context, e store.Extraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		return nil
	}
	if _, ok := s.extractions[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.extractions[e.ID] = copyExtraction(e)
	return nil
}

// GetExtraction returns a run by ID.
func (s *Store) GetExtraction(ctx context.Context, id string) (store.Extraction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.extractions[id]; ok {
		return copyExtraction(e), true, nil
	}
	return store.Extraction{}, false, nil
}

// ListExtractions returns up to limit runs, newest first.
func (s *Store) ListExtractions(ctx context.Context, limit int) ([]store.Extraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	results := make([]store.Extraction, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		results = append(results, copyExtraction(s.extractions[s.order[i]]))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ExtractedAt.After(results[j].ExtractedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// TopKeywords aggregates keywords across all runs.
func (s *Store) TopKeywords(ctx context.Context, limit int) ([]store.KeywordStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	type agg struct {
		runs int64
		sum  float64
	}
	byPhrase := make(map[string]agg)
	for _, e := range s.extractions {
		seen := make(map[string]struct{}, len(e.Keywords))
		for _, kw := range e.Keywords {
			a := byPhrase[kw.Keyword]
			a.sum += kw.Score
			if _, dup := seen[kw.Keyword]; !dup {
				a.runs++
				seen[kw.Keyword] = struct{}{}
			}
			byPhrase[kw.Keyword] = a
		}
	}

	stats := make([]store.KeywordStat, 0, len(byPhrase))
	for phrase, a := range byPhrase {
		stats = append(stats, store.KeywordStat{
			Keyword:   phrase,
			Runs:      a.runs,
			MeanScore: a.sum / float64(a.runs),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Runs != stats[j].Runs {
			return stats[i].Runs > stats[j].Runs
		}
		return stats[i].Keyword < stats[j].Keyword
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

func copyExtraction(e store.Extraction) store.Extraction {
	out := e
	out.Keywords = make([]rank.KeywordScore, len(e.Keywords))
	copy(out.Keywords, e.Keywords)
	return out
}
