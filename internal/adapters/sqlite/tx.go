package sqlite

import (
	"context"
	"database/sql"
	"time"

	"tagcount/internal/domain"
)

// runTx wraps a transaction used to save one run
type runTx struct {
	tx *sql.Tx
}

// beginTx starts a new transaction
func (s *Store) beginTx(ctx context.Context) (*runTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &runTx{tx: tx}, nil
}

// insertRun inserts the run row and returns its id
func (t *runTx) insertRun(r *domain.Report, outputPath string, savedAt time.Time) (int64, error) {
	res, err := t.tx.Exec(`
		INSERT INTO runs (
			manifest_path, output_path, year, x_count,
			files_listed, files_scanned, files_skipped,
			records_read, records_qualifying, records_unmatched,
			started_at, finished_at, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ManifestPath, outputPath, r.Year, r.Counts.X,
		r.Stats.FilesListed, r.Stats.FilesScanned, r.Stats.FilesSkipped,
		r.Stats.RecordsRead, r.Stats.RecordsQualifying, r.Stats.RecordsUnmatched,
		r.StartedAt.UnixNano(), r.FinishedAt.UnixNano(), savedAt.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertCount inserts one per-tag count
func (t *runTx) insertCount(runID int64, tag domain.Tag, count int) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO run_counts (run_id, tag, count)
		VALUES (?, ?, ?)
	`, runID, tag.String(), count)
	return err
}

// Commit commits the transaction
func (t *runTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction. It is a no-op after Commit.
func (t *runTx) Rollback() error {
	return t.tx.Rollback()
}
