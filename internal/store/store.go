// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordstat/internal/analyzer"
	"github.com/verte-zerg/wordstat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Fixed-width so that lexical order in SQLite matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when an analysis ID does not exist.
var ErrNotFound = errors.New("analysis not found")

// Store wraps SQLite access for analysis history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			analyzed_at TEXT NOT NULL,
			source TEXT NOT NULL,
			words INTEGER NOT NULL,
			characters INTEGER NOT NULL,
			sentences INTEGER NOT NULL,
			paragraphs INTEGER NOT NULL,
			unique_words INTEGER NOT NULL,
			reading_time_seconds INTEGER NOT NULL,
			stats_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores the stats computed for source at the given time.
func (s *Store) InsertAnalysis(ctx context.Context, source string, at time.Time, st analyzer.Stats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (analyzed_at, source, words, characters, sentences, paragraphs, unique_words, reading_time_seconds, stats_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		at.UTC().Format(timeLayout),
		source,
		st.Words,
		st.Characters,
		st.Sentences,
		st.Paragraphs,
		st.UniqueWords,
		st.ReadingTimeSeconds,
		st.ToJSON(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAnalyses returns stored analyses filtered by cfg, oldest first.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.AnalysisRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, cfg.Source)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "analyzed_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, analyzed_at, source, stats_json
		FROM analyses
		WHERE %s
		ORDER BY analyzed_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.AnalysisRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

// GetAnalysis returns one stored analysis by ID.
func (s *Store) GetAnalysis(ctx context.Context, id int64) (model.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, analyzed_at, source, stats_json FROM analyses WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AnalysisRecord{}, ErrNotFound
	}
	if err != nil {
		return model.AnalysisRecord{}, err
	}
	return rec, nil
}

// DeleteAnalysis removes one stored analysis by ID.
func (s *Store) DeleteAnalysis(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (model.AnalysisRecord, error) {
	var rec model.AnalysisRecord
	var analyzedAt, statsJSON string
	if err := sc.Scan(&rec.ID, &analyzedAt, &rec.Source, &statsJSON); err != nil {
		return model.AnalysisRecord{}, err
	}
	parsed, err := time.Parse(timeLayout, analyzedAt)
	if err != nil {
		return model.AnalysisRecord{}, err
	}
	rec.AnalyzedAt = parsed
	st, err := analyzer.FromJSON([]byte(statsJSON))
	if err != nil {
		return model.AnalysisRecord{}, fmt.Errorf("failed to decode stats for analysis %d: %w", rec.ID, err)
	}
	rec.Stats = st
	return rec, nil
}
