package storage

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	errpkg "github.com/veranemoloko/cssgrab/internal/errors"
)

func TestFileStorage_EnsureDirCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "css")
	fs := NewFileStorage(dir)

	if err := fs.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", dir)
	}

	if err := fs.EnsureDir(); err != nil {
		t.Errorf("EnsureDir on existing directory: %v", err)
	}
}

func TestFileStorage_EnsureDirBlockedByFile(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "css")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	err := NewFileStorage(filepath.Join(blocker, "sub")).EnsureDir()
	if !errors.Is(err, errpkg.ErrDestinationUnavailable) {
		t.Errorf("expected ErrDestinationUnavailable, got %v", err)
	}
}

func TestFileStorage_CopyFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	srcData := []byte("body { color: red }")

	n, err := fs.CopyFile(bytes.NewReader(srcData), "site.css")
	if err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	if n != int64(len(srcData)) {
		t.Errorf("expected copied bytes %d, got %d", len(srcData), n)
	}

	readBack, err := os.ReadFile(filepath.Join(dir, "site.css"))
	if err != nil {
		t.Fatalf("failed to read copied file: %v", err)
	}

	if !bytes.Equal(readBack, srcData) {
		t.Errorf("copied content mismatch: got %q, want %q", readBack, srcData)
	}
}

func TestFileStorage_CopyFileTruncates(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	if _, err := fs.CopyFile(bytes.NewReader([]byte("a much longer first body")), "a.css"); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}
	if _, err := fs.CopyFile(bytes.NewReader([]byte("short")), "a.css"); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	info, err := os.Stat(fs.Path("a.css"))
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("expected truncated size 5, got %d", info.Size())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestFileStorage_CopyFileRemovesPartial(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	src := io.MultiReader(bytes.NewReader([]byte("partial")), failingReader{})
	if _, err := fs.CopyFile(src, "broken.css"); err == nil {
		t.Fatalf("expected error from failing reader")
	}

	if fs.FileExists("broken.css") {
		t.Errorf("expected partial file to be removed")
	}
}

func TestFileStorage_FailedCopyKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	if _, err := fs.CopyFile(bytes.NewReader([]byte("good")), "a.css"); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	src := io.MultiReader(bytes.NewReader([]byte("partial")), failingReader{})
	if _, err := fs.CopyFile(src, "a.css"); err == nil {
		t.Fatalf("expected error from failing reader")
	}

	data, err := os.ReadFile(fs.Path("a.css"))
	if err != nil {
		t.Fatalf("expected earlier file to survive: %v", err)
	}
	if string(data) != "good" {
		t.Errorf("expected earlier content %q, got %q", "good", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only a.css to remain, got %d entries", len(entries))
	}
}

func TestFileStorage_CopyFilePermissions(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	if _, err := fs.CopyFile(bytes.NewReader([]byte("x")), "a.css"); err != nil {
		t.Fatalf("CopyFile error: %v", err)
	}

	info, err := os.Stat(fs.Path("a.css"))
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if info.Mode().Perm()&0o044 == 0 {
		t.Errorf("expected group/other read permission, got %v", info.Mode().Perm())
	}
}

func TestFileStorage_CopyFileIntoMissingDir(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "missing"))

	if _, err := fs.CopyFile(bytes.NewReader([]byte("x")), "a.css"); err == nil {
		t.Errorf("expected error when directory does not exist")
	}
}

func TestFileStorage_FileExistsFalse(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	if fs.FileExists("no_such_file.css") {
		t.Errorf("expected FileExists to return false for non-existing file")
	}
}
