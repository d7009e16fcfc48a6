package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
)

func setupTestCorpus(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tagcount-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestReadManifest_SkipsBlankLines(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	manifest := filepath.Join(dir, "manifest.txt")
	writeFile(t, manifest, "one.txt\r\n\ntwo.txt\n   \nthree.gz\n")

	paths, err := NewCorpus().ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	want := []string{"one.txt", "two.txt", "three.gz"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestReadManifest_Empty(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	manifest := filepath.Join(dir, "manifest.txt")
	writeFile(t, manifest, "\n")

	paths, err := NewCorpus().ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestReadManifest_Missing(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	_, err := NewCorpus().ReadManifest(filepath.Join(dir, "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpen_PlainFile(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	path := filepath.Join(dir, "data.txt")
	writeFile(t, path, "a_NOUN 1950 2 1 1\n")

	rc, err := NewCorpus().Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != "a_NOUN 1950 2 1 1\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestOpen_GzipFile(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	path := filepath.Join(dir, "data.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create gzip file: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("b_VERB 1950 3 1 1\n")); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	f.Close()

	rc, err := NewCorpus().Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if string(got) != "b_VERB 1950 3 1 1\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestOpen_CorruptGzip(t *testing.T) {
	dir, cleanup := setupTestCorpus(t)
	defer cleanup()

	path := filepath.Join(dir, "bad.gz")
	writeFile(t, path, "not gzip at all")

	if _, err := NewCorpus().Open(path); err == nil {
		t.Error("expected error opening corrupt gzip file")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/data/x.txt"); got != filepath.Join(home, "data/x.txt") {
		t.Errorf("unexpected expansion %q", got)
	}
	if got := ExpandHome("/abs/x.txt"); got != "/abs/x.txt" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}
