package ports

import (
	"context"
	"time"

	"tagcount/internal/domain"
)

// ReportSink receives a finished report
type ReportSink interface {
	Publish(ctx context.Context, report *domain.Report) error
}

// Run is a report saved to history
type Run struct {
	ID         int64
	OutputPath string
	Report     domain.Report
	SavedAt    time.Time
}

// RunStore persists finished reports
type RunStore interface {
	ReportSink

	// ListRuns returns saved runs newest first. year <= 0 lists every year.
	ListRuns(ctx context.Context, year int, limit int) ([]Run, error)
	Close() error
}
