package filesystem

import (
	"context"
	"fmt"
	"os"

	"tagcount/internal/domain"
	"tagcount/internal/ports"
)

// ReportFile writes the report text to a file that is created up front,
// so an unwritable output path fails before any scanning happens
type ReportFile struct {
	path string
	file *os.File
}

// Ensure ReportFile implements ReportSink
var _ ports.ReportSink = (*ReportFile)(nil)

// CreateReportFile creates (or truncates) the output file
func CreateReportFile(path string) (*ReportFile, error) {
	f, err := os.Create(ExpandHome(path))
	if err != nil {
		return nil, err
	}
	return &ReportFile{path: path, file: f}, nil
}

// Path returns the output path as given
func (r *ReportFile) Path() string {
	return r.path
}

// Publish writes the report and syncs the file
func (r *ReportFile) Publish(_ context.Context, report *domain.Report) error {
	if _, err := report.WriteTo(r.file); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", r.path, err)
	}
	return r.file.Sync()
}

// Close closes the output file
func (r *ReportFile) Close() error {
	return r.file.Close()
}
