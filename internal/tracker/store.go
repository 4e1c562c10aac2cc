package tracker

import "jobtrack/internal/model"

// RecordStore persists the application table. The table has no random
// access: updates are a full Load followed by a full ReplaceAll, which is
// only acceptable for personal-scale record counts.
type RecordStore interface {
	// Load returns every record in storage (insertion) order.
	// A missing store is created empty and yields an empty slice.
	Load() ([]*model.Application, error)

	// Append adds a single record at the end of the table.
	Append(app *model.Application) error

	// ReplaceAll rewrites the entire table from apps, in order.
	ReplaceAll(apps []*model.Application) error

	// Close releases any resources held by the store.
	Close() error
}
