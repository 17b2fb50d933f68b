// Package store handles SQLite persistence of analysis history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for analysis history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
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
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			characters INTEGER NOT NULL,
			letters INTEGER NOT NULL,
			words INTEGER NOT NULL,
			sentences INTEGER NOT NULL,
			paragraphs INTEGER NOT NULL,
			adverbs INTEGER NOT NULL,
			qualifiers INTEGER NOT NULL,
			passive_voices INTEGER NOT NULL,
			reading_level INTEGER NOT NULL,
			readability TEXT NOT NULL,
			reading_time_secs REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS paragraph_stats (
			analysis_id INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			words INTEGER NOT NULL,
			sentences INTEGER NOT NULL,
			reading_level INTEGER NOT NULL,
			PRIMARY KEY (analysis_id, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores an analysis and its per-paragraph stats in one
// transaction.
func (s *Store) InsertAnalysis(ctx context.Context, rec model.AnalysisRecord, paragraphs []model.ParagraphStats) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	st := rec.Stats
	res, err := tx.ExecContext(ctx,
		`INSERT INTO analyses (created_at, source, target, characters, letters, words, sentences, paragraphs,
			adverbs, qualifiers, passive_voices, reading_level, readability, reading_time_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.Source,
		string(rec.Target),
		st.Characters,
		st.Letters,
		st.Words,
		st.Sentences,
		st.Paragraphs,
		st.Highlights.Adverbs,
		st.Highlights.Qualifiers,
		st.Highlights.PassiveVoices,
		st.ReadingLevel,
		string(st.Readability),
		st.ReadingTimeInSecs,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(paragraphs) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO paragraph_stats (analysis_id, idx, words, sentences, reading_level)
			 VALUES (?, ?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, p := range paragraphs {
			if _, err = stmt.ExecContext(ctx, id, i, p.Words, p.Sentences, p.ReadingLevel); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// filterClause builds the WHERE clause shared by history queries.
func filterClause(cfg model.HistoryConfig) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, cfg.Source)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	return strings.Join(clauses, " AND "), args
}

func lastLimit(cfg model.HistoryConfig) int {
	if cfg.Last > 0 {
		return cfg.Last
	}
	return -1
}

// ListAnalyses returns stored analyses filtered by the history config,
// oldest first. Last keeps only the most recent N matches.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.AnalysisRecord, error) {
	where, args := filterClause(cfg)
	args = append(args, lastLimit(cfg))
	query := fmt.Sprintf(`SELECT * FROM (
		SELECT id, created_at, source, target, characters, letters, words, sentences, paragraphs,
			adverbs, qualifiers, passive_voices, reading_level, readability, reading_time_secs
		FROM analyses
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	) ORDER BY created_at ASC, id ASC`, where)
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
		var rec model.AnalysisRecord
		var createdAt, target, class string
		st := &rec.Stats
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Source, &target,
			&st.Characters, &st.Letters, &st.Words, &st.Sentences, &st.Paragraphs,
			&st.Highlights.Adverbs, &st.Highlights.Qualifiers, &st.Highlights.PassiveVoices,
			&st.ReadingLevel, &class, &st.ReadingTimeInSecs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		rec.Target = readability.ParseTarget(target)
		st.Readability = readability.Class(class)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ListParagraphs returns the paragraph rows of the given analyses keyed by
// analysis id, each slice in paragraph order.
func (s *Store) ListParagraphs(ctx context.Context, analysisIDs []int64) (map[int64][]model.ParagraphRecord, error) {
	result := map[int64][]model.ParagraphRecord{}
	if len(analysisIDs) == 0 {
		return result, nil
	}
	placeholders := make([]string, len(analysisIDs))
	args := make([]any, len(analysisIDs))
	for i, id := range analysisIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT analysis_id, idx, words, sentences, reading_level
		FROM paragraph_stats
		WHERE analysis_id IN (%s)
		ORDER BY analysis_id, idx`, strings.Join(placeholders, ","))
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

	for rows.Next() {
		var p model.ParagraphRecord
		if err := rows.Scan(&p.AnalysisID, &p.Index, &p.Words, &p.Sentences, &p.ReadingLevel); err != nil {
			return nil, err
		}
		result[p.AnalysisID] = append(result[p.AnalysisID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListSources aggregates the analyses matching the history filters by
// source. Last applies across sources as in ListAnalyses; then only the
// newest Window analyses of each source are kept. A non-positive Window
// keeps them all.
func (s *Store) ListSources(ctx context.Context, cfg model.HistoryConfig) ([]model.SourceAggregate, error) {
	where, args := filterClause(cfg)
	args = append(args, lastLimit(cfg), cfg.Window, cfg.Window)
	query := fmt.Sprintf(`WITH filtered AS (
		SELECT id, created_at, source, words, reading_level FROM analyses
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	), ranked AS (
		SELECT source, words, reading_level, created_at,
			ROW_NUMBER() OVER (PARTITION BY source ORDER BY created_at DESC, id DESC) AS rn
		FROM filtered
	)
	SELECT source, COUNT(*) AS analyses, SUM(words) AS words,
		AVG(reading_level) AS avg_level, MAX(created_at) AS last_at
	FROM ranked
	WHERE ? <= 0 OR rn <= ?
	GROUP BY source
	ORDER BY source`, where)

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

	var result []model.SourceAggregate
	for rows.Next() {
		var agg model.SourceAggregate
		var lastAt string
		if err := rows.Scan(&agg.Source, &agg.Analyses, &agg.Words, &agg.AvgReadingLevel, &lastAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, lastAt)
		if err != nil {
			return nil, err
		}
		agg.LastAt = parsed
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
