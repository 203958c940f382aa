package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	errpkg "github.com/veranemoloko/cssgrab/internal/errors"
)

// FileStorage provides methods to manage files in a specific directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a new FileStorage instance with the given directory.
// The directory is not touched until EnsureDir is called.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStorage) Dir() string {
	return s.dir
}

// EnsureDir creates the storage directory and any missing parents.
func (s *FileStorage) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", errpkg.ErrDestinationUnavailable, s.dir, err)
	}
	return nil
}

// Path returns the location of filename inside the storage directory.
func (s *FileStorage) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// CreateTemp creates a hidden scratch file for filename inside the storage directory.
func (s *FileStorage) CreateTemp(filename string) (*os.File, error) {
	return os.CreateTemp(s.dir, "."+filename+".*.part")
}

// FileExists checks whether a file exists in the storage directory.
func (s *FileStorage) FileExists(filename string) bool {
	_, err := os.Stat(s.Path(filename))
	return err == nil
}

// CopyFile copies data from the provided reader to a file with the specified filename.
// The body is staged in a scratch file and renamed over the target only once it has been
// read completely, so a failed copy leaves any existing file untouched.
// Returns the number of bytes written and any error encountered.
func (s *FileStorage) CopyFile(src io.Reader, dstFilename string) (int64, error) {
	tmp, err := s.CreateTemp(dstFilename)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpPath, s.Path(dstFilename))
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return n, fmt.Errorf("write file: %w", err)
	}

	return n, nil
}
