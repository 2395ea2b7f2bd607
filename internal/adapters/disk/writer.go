package disk

import (
	"os"
	"path/filepath"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/hailam/fillfile/internal/ports"
)

// ErrWriteFile wraps any I/O failure while persisting content.
var ErrWriteFile = errors.NewKind("Failed to write data to file")

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// DiskWriter writes content to the local filesystem.
type DiskWriter struct{}

// New creates a disk writer.
func New() ports.FileWriter {
	return &DiskWriter{}
}

// Write creates the parent directories of path, then creates or truncates
// the file and stores data in it.
func (w *DiskWriter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return ErrWriteFile.Wrap(err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return ErrWriteFile.Wrap(err)
	}
	return nil
}
