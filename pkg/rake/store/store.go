package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/rake/pkg/rake/rank"
)

// Store persists extraction runs and their ranked keywords
type Store interface {
	Close() error

	// SaveExtraction inserts or replaces a run, keyed by ID
	SaveExtraction(ctx context.Context, e Extraction) error
	// GetExtraction returns a run by ID; the bool reports existence
	GetExtraction(ctx context.Context, id string) (Extraction, bool, error)
	// ListExtractions returns up to limit runs, newest first
	ListExtractions(ctx context.Context, limit int) ([]Extraction, error)
	// TopKeywords aggregates keywords across all runs
	TopKeywords(ctx context.Context, limit int) ([]KeywordStat, error)
}

// Extraction is one stored extraction run
type Extraction struct {
	ID          string
	Source      string // file path, URL, or caller-supplied label
	ExtractedAt time.Time
	Keywords    []rank.KeywordScore // in ranked order
}

// KeywordStat is a cross-run aggregate for one keyword
type KeywordStat struct {
	Keyword   string
	Runs      int64 // number of runs the keyword appeared in
	MeanScore float64
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID generates a ULID for a new extraction run.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
