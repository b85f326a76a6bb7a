package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS extractions (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	extracted_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS extraction_keywords (
	extraction_id TEXT NOT NULL,
	pos INTEGER NOT NULL,
	phrase TEXT NOT NULL,
	score REAL NOT NULL,
	PRIMARY KEY(extraction_id, pos),
	FOREIGN KEY(extraction_id) REFERENCES extractions(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveExtraction inserts or replaces an extraction run and its keywords
func (s *sqliteStore) SaveExtraction(ctx context.Context, e store.Extraction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO extractions (id, source, extracted_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	extracted_at=excluded.extracted_at;
`, e.ID, e.Source, e.ExtractedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM extraction_keywords WHERE extraction_id=?`, e.ID); err != nil {
		return err
	}

	if len(e.Keywords) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO extraction_keywords (extraction_id, pos, phrase, score) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, kw := range e.Keywords {
			if _, err := stmt.ExecContext(ctx, e.ID, i, kw.Keyword, kw.Score); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetExtraction retrieves an extraction run by ID
func (s *sqliteStore) GetExtraction(ctx context.Context, id string) (store.Extraction, bool, error) {
	var (
		e         store.Extraction
		extracted string
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, source, extracted_at FROM extractions WHERE id = ?;
`, id).Scan(&e.ID, &e.Source, &extracted)
	if err == sql.ErrNoRows {
		return store.Extraction{}, false, nil
	}
	if err != nil {
		return store.Extraction{}, false, err
	}

	if parsed, perr := time.Parse(time.RFC3339, extracted); perr == nil {
		e.ExtractedAt = parsed
	}

	e.Keywords, err = s.loadKeywords(ctx, id)
	if err != nil {
		return store.Extraction{}, false, err
	}
	return e, true, nil
}

// ListExtractions returns up to limit runs, newest first
func (s *sqliteStore) ListExtractions(ctx context.Context, limit int) ([]store.Extraction, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id FROM extractions
ORDER BY extracted_at DESC, id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var results []store.Extraction
	for _, id := range ids {
		e, ok, err := s.GetExtraction(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			results = append(results, e)
		}
	}
	return results, nil
}

// TopKeywords aggregates keywords across all stored runs, ordered by the
// number of runs each keyword appeared in, then by phrase.
func (s *sqliteStore) TopKeywords(ctx context.Context, limit int) ([]store.KeywordStat, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT phrase, COUNT(DISTINCT extraction_id) AS runs, AVG(score) AS mean_score
FROM extraction_keywords
GROUP BY phrase
ORDER BY runs DESC, phrase ASC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []store.KeywordStat
	for rows.Next() {
		var st store.KeywordStat
		if err := rows.Scan(&st.Keyword, &st.Runs, &st.MeanScore); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *sqliteStore) loadKeywords(ctx context.Context, id string) ([]rank.KeywordScore, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT phrase, score FROM extraction_keywords
WHERE extraction_id = ?
ORDER BY pos ASC;
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []rank.KeywordScore
	for rows.Next() {
		var kw rank.KeywordScore
		if err := rows.Scan(&kw.Keyword, &kw.Score); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}
