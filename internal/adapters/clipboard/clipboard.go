package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"tagcount/internal/domain"
	"tagcount/internal/ports"
)

// Sink copies the report text to the system clipboard
type Sink struct {
	write func(string) error
}

// Ensure Sink implements ReportSink
var _ ports.ReportSink = (*Sink)(nil)

// NewSink creates a clipboard sink
func NewSink() *Sink {
	return &Sink{write: clipboard.WriteAll}
}

// Available reports whether a clipboard backend exists on this system
func Available() bool {
	return !clipboard.Unsupported
}

// Publish copies the report to the clipboard
func (s *Sink) Publish(_ context.Context, report *domain.Report) error {
	if err := s.write(report.String()); err != nil {
		return fmt.Errorf("failed to copy report to clipboard: %w", err)
	}
	return nil
}
