package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"tagcount/internal/ports"
)

// Corpus implements ports.ManifestReader and ports.DataSource using the filesystem
type Corpus struct{}

// Ensure Corpus implements the corpus ports
var (
	_ ports.ManifestReader = (*Corpus)(nil)
	_ ports.DataSource     = (*Corpus)(nil)
)

// NewCorpus creates a new filesystem corpus
func NewCorpus() *Corpus {
	return &Corpus{}
}

// ReadManifest returns the data-file paths listed one per line in path.
// Blank lines, including the one after a trailing newline, are skipped.
func (c *Corpus) ReadManifest(path string) ([]string, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return paths, nil
}

// Open opens a data file. Files ending in .gz are decompressed on the fly.
func (c *Corpus) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

// gzipFile closes both the decompressor and the underlying file
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
