package tracker

import (
	"context"
	"io"
)

// ExportDestination receives timestamped copies of the application table.
type ExportDestination interface {
	// Put stores size bytes read from r under name and returns the location
	// written (a path or URL).
	Put(ctx context.Context, name string, r io.Reader, size int64) (string, error)

	// ValidateSetup verifies that the destination is reachable and writable.
	ValidateSetup() error
}
