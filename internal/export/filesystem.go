package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jobtrack/internal/atomicfile"
	"jobtrack/internal/tracker"
)

// FileSystemDestination writes exports as files in a single directory.
type FileSystemDestination struct {
	dir string
}

// NewFileSystemDestination creates the export directory if needed.
func NewFileSystemDestination(dir string) (*FileSystemDestination, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving export directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &FileSystemDestination{dir: abs}, nil
}

// Put writes the export under name and returns its path. An existing export
// with the same name is never replaced.
func (d *FileSystemDestination) Put(_ context.Context, name string, r io.Reader, size int64) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid export name: %q", name)
	}

	destPath := filepath.Join(d.dir, name)
	if _, err := os.Stat(destPath); err == nil {
		return "", fmt.Errorf("export already exists: %s", destPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("checking export path: %w", err)
	}

	if err := atomicfile.Write(destPath, r, 0600, size); err != nil {
		return "", err
	}
	return destPath, nil
}

// ValidateSetup verifies the export directory exists and is writable.
func (d *FileSystemDestination) ValidateSetup() error {
	info, err := os.Stat(d.dir)
	if err != nil {
		return fmt.Errorf("export directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export path is not a directory: %s", d.dir)
	}

	f, err := os.CreateTemp(d.dir, ".write-check-*")
	if err != nil {
		return fmt.Errorf("export directory not writable: %w", err)
	}
	f.Close()
	return os.Remove(f.Name())
}

// Dir returns the absolute export directory.
func (d *FileSystemDestination) Dir() string {
	return d.dir
}

var _ tracker.ExportDestination = (*FileSystemDestination)(nil)
