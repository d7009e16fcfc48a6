package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tagcount/internal/application"
	"tagcount/internal/domain"
	"tagcount/internal/ports"
)

// cancelCheckInterval is how many records are read between context checks
const cancelCheckInterval = 4096

// CountTagsCommand tallies part-of-speech tags for one year over every file
// listed in a manifest
type CountTagsCommand struct {
	manifests ports.ManifestReader
	source    ports.DataSource
	sinks     []ports.ReportSink
	progress  ports.ProgressFunc
	logger    *slog.Logger

	ManifestPath string
	Year         int
}

// NewCountTagsCommand creates a new CountTagsCommand
func NewCountTagsCommand(manifests ports.ManifestReader, source ports.DataSource, manifestPath string, year int) *CountTagsCommand {
	return &CountTagsCommand{
		manifests:    manifests,
		source:       source,
		logger:       slog.Default(),
		ManifestPath: manifestPath,
		Year:         year,
	}
}

// WithSinks adds sinks that receive the finished report, in order
func (c *CountTagsCommand) WithSinks(sinks ...ports.ReportSink) *CountTagsCommand {
	c.sinks = append(c.sinks, sinks...)
	return c
}

// WithProgress sets a progress observer
func (c *CountTagsCommand) WithProgress(fn ports.ProgressFunc) *CountTagsCommand {
	c.progress = fn
	return c
}

// WithLogger replaces the default logger
func (c *CountTagsCommand) WithLogger(logger *slog.Logger) *CountTagsCommand {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Validate checks the command parameters
func (c *CountTagsCommand) Validate() error {
	return application.ValidateRequired("manifestPath", c.ManifestPath)
}

// Execute scans every listed file and publishes the report to all sinks.
// A data file that cannot be opened is logged and skipped.
func (c *CountTagsCommand) Execute(ctx context.Context) (*domain.Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	paths, err := c.manifests.ReadManifest(c.ManifestPath)
	if err != nil {
		return nil, &application.FileError{Op: application.OpManifest, Path: c.ManifestPath, Err: err}
	}

	report := &domain.Report{
		ManifestPath: c.ManifestPath,
		Year:         c.Year,
		StartedAt:    time.Now(),
	}
	report.Stats.FilesListed = len(paths)

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.notify(ports.Progress{Index: i, Total: len(paths), Path: path})

		if err := c.scanFile(ctx, path, report); err != nil {
			if !errors.Is(err, application.ErrDataFileOpen) {
				return nil, err
			}
			report.Stats.FilesSkipped++
			c.logger.Warn("skipping data file", "path", path, "error", err)
			continue
		}
		report.Stats.FilesScanned++
	}
	c.notify(ports.Progress{Index: len(paths), Total: len(paths), Done: true})

	report.FinishedAt = time.Now()
	c.logger.Info("scan complete",
		"year", c.Year,
		"files", report.Stats.FilesScanned,
		"skipped", report.Stats.FilesSkipped,
		"records", report.Stats.RecordsRead,
		"qualifying", report.Stats.RecordsQualifying,
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	for _, sink := range c.sinks {
		if err := sink.Publish(ctx, report); err != nil {
			return report, fmt.Errorf("failed to publish report: %w", err)
		}
	}

	return report, nil
}

// scanFile tallies one data file into report. The file is closed on every path.
func (c *CountTagsCommand) scanFile(ctx context.Context, path string, report *domain.Report) error {
	rc, err := c.source.Open(path)
	if err != nil {
		return &application.FileError{Op: application.OpDataFile, Path: path, Err: err}
	}
	defer rc.Close()

	var read, qualifying int
	rr := domain.NewRecordReader(rc)
	for {
		rec, ok := rr.Next()
		if !ok {
			break
		}
		read++
		if read%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if !rec.Qualifies(c.Year) {
			continue
		}
		qualifying++
		if !report.Counts.Tally(rec) {
			report.Stats.RecordsUnmatched++
		}
	}

	report.Stats.RecordsRead += read
	report.Stats.RecordsQualifying += qualifying

	// A read error ends the file like end-of-stream; records already read still count.
	if err := rr.Err(); err != nil {
		c.logger.Warn("data file ended early", "path", path, "records", read, "error", err)
	}

	c.logger.Debug("scanned data file", "path", path, "records", read, "qualifying", qualifying)
	return nil
}

func (c *CountTagsCommand) notify(p ports.Progress) {
	if c.progress != nil {
		c.progress(p)
	}
}
