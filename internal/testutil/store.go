package testutil

import (
	"path/filepath"
	"testing"

	"jobtrack/internal/model"
	"jobtrack/internal/store"
	"jobtrack/internal/tracker"
)

// NewTestStore creates a CSV store in a per-test temp directory.
func NewTestStore(t *testing.T) *store.CSVStore {
	t.Helper()

	s, err := store.NewCSVStore(filepath.Join(t.TempDir(), "job_applications.csv"), nil)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

// NewTestSQLiteStore creates an in-memory SQLite store with migrations applied.
// The store is closed when the test completes.
func NewTestSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// SeedStore appends apps to s in order.
func SeedStore(t *testing.T, s tracker.RecordStore, apps ...*model.Application) {
	t.Helper()

	for _, app := range apps {
		if err := s.Append(app); err != nil {
			t.Fatalf("failed to seed %s: %v", app.ID, err)
		}
	}
}
