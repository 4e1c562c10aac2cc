package store

import (
	"fmt"
	"os"
	"path/filepath"

	"jobtrack/internal/config"
	"jobtrack/internal/tracker"
)

// NewRecordStoreFromConfig creates a RecordStore based on the store config type.
func NewRecordStoreFromConfig(cfg config.StoreConfig, logger tracker.Logger) (tracker.RecordStore, error) {
	switch cfg.Type {
	case "csv", "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("path required for csv store")
		}
		return NewCSVStore(cfg.Path, logger)
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "jobtrack.db"))
	case "memory":
		return NewSQLiteStore(":memory:")
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
