package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tagcount/internal/domain"
	"tagcount/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.RunStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string

	// OutputPath is recorded with every published report
	OutputPath string
}

// Ensure Store implements RunStore
var _ ports.RunStore = (*Store)(nil)

// Open opens (or creates) the history database at dbPath
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			manifest_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			year INTEGER NOT NULL,
			x_count INTEGER NOT NULL,
			files_listed INTEGER NOT NULL,
			files_scanned INTEGER NOT NULL,
			files_skipped INTEGER NOT NULL,
			records_read INTEGER NOT NULL,
			records_qualifying INTEGER NOT NULL,
			records_unmatched INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			saved_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_counts (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			tag TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, tag)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_year ON runs(year);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Publish saves the report as a new run
func (s *Store) Publish(ctx context.Context, report *domain.Report) error {
	_, err := s.SaveRun(ctx, report)
	return err
}

// SaveRun saves the report and its per-tag counts in one transaction
func (s *Store) SaveRun(ctx context.Context, report *domain.Report) (int64, error) {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	id, err := tx.insertRun(report, s.OutputPath, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	for _, tag := range domain.NamedTags {
		if err := tx.insertCount(id, tag, report.Counts.Get(tag)); err != nil {
			return 0, fmt.Errorf("failed to insert %s count: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns saved runs newest first. year <= 0 lists every year.
func (s *Store) ListRuns(ctx context.Context, year int, limit int) ([]ports.Run, error) {
	query := `
		SELECT id, manifest_path, output_path, year, x_count,
			files_listed, files_scanned, files_skipped,
			records_read, records_qualifying, records_unmatched,
			started_at, finished_at, saved_at
		FROM runs`
	var args []any
	if year > 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY saved_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []ports.Run
	for rows.Next() {
		var run ports.Run
		var started, finished, saved int64
		r := &run.Report
		if err := rows.Scan(&run.ID, &r.ManifestPath, &run.OutputPath, &r.Year, &r.Counts.X,
			&r.Stats.FilesListed, &r.Stats.FilesScanned, &r.Stats.FilesSkipped,
			&r.Stats.RecordsRead, &r.Stats.RecordsQualifying, &r.Stats.RecordsUnmatched,
			&started, &finished, &saved); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(0, started)
		r.FinishedAt = time.Unix(0, finished)
		run.SavedAt = time.Unix(0, saved)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		if err := s.loadCounts(ctx, &runs[i]); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

// loadCounts fills the named-tag counts of a run
func (s *Store) loadCounts(ctx context.Context, run *ports.Run) error {
	rows, err := s.db.QueryContext(ctx, `SELECT tag, count FROM run_counts WHERE run_id = ?`, run.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		var n int
		if err := rows.Scan(&code, &n); err != nil {
			return err
		}
		if tag, ok := domain.ParseTag(code); ok {
			run.Report.Counts.Set(tag, n)
		}
	}
	return rows.Err()
}
