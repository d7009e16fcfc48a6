package ports

import "io"

// ManifestReader loads the ordered list of data-file paths
type ManifestReader interface {
	ReadManifest(path string) ([]string, error)
}

// DataSource opens a data file as a token stream.
// The caller closes the returned reader.
type DataSource interface {
	Open(path string) (io.ReadCloser, error)
}

// Progress describes where a scan is. Index is zero-based; Done is set on
// the final call after every file has been handled.
type Progress struct {
	Index int
	Total int
	Path  string
	Done  bool
}

// ProgressFunc observes scan progress. It must not block for long and has
// no influence on the counts.
type ProgressFunc func(Progress)
