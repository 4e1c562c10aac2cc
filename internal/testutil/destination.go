package testutil

import "jobtrack/internal/export"

// NewTestDestination creates an in-memory export destination.
func NewTestDestination() *export.MemoryDestination {
	return export.NewMemoryDestination()
}
