package domain

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ScanStats describes how a scan went. It is logged and stored with run
// history but never written into the report text.
type ScanStats struct {
	FilesListed       int
	FilesScanned      int
	FilesSkipped      int
	RecordsRead       int
	RecordsQualifying int
	RecordsUnmatched  int
}

// Report is the result of one tally over a manifest
type Report struct {
	ManifestPath string
	Year         int
	Counts       Counts
	Stats        ScanStats
	StartedAt    time.Time
	FinishedAt   time.Time
}

// tagLine renders the per-tag line. The NUM line carries a space before the
// apostrophe; downstream consumers diff against that exact text.
func tagLine(t Tag, count, year int) string {
	label := "_" + t.String() + "_'s"
	if t == TagNum {
		label = "_NUM_ 's"
	}
	return fmt.Sprintf("There are %d %s in the year %d", count, label, year)
}

// Lines returns the report body, one entry per output line
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(NamedTags)+3)
	for _, t := range NamedTags {
		lines = append(lines, tagLine(t, r.Counts.Get(t), r.Year))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("There are %d words overall in the year %d with volume greater than or equal to 2", r.Counts.Sum(), r.Year),
		fmt.Sprintf("And there are %d words, when including the _X tag", r.Counts.SumWithX()),
	)
	return lines
}

// String returns the full report text with a trailing newline
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// WriteTo writes the report text to w
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
