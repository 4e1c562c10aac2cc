package store

import (
	"os"
	"path/filepath"
	"testing"

	"jobtrack/internal/config"
)

func TestNewRecordStoreFromConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      config.StoreConfig
		wantErr  bool
		wantType string
	}{
		{"csv", config.StoreConfig{Type: "csv", Path: filepath.Join(dir, "a.csv")}, false, "csv"},
		{"default type is csv", config.StoreConfig{Path: filepath.Join(dir, "b.csv")}, false, "csv"},
		{"csv without path", config.StoreConfig{Type: "csv"}, true, ""},
		{"sqlite", config.StoreConfig{Type: "sqlite", DataDir: filepath.Join(dir, "data")}, false, "sqlite"},
		{"sqlite without data dir", config.StoreConfig{Type: "sqlite"}, true, ""},
		{"memory", config.StoreConfig{Type: "memory"}, false, "sqlite"},
		{"unknown", config.StoreConfig{Type: "postgres"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewRecordStoreFromConfig(tt.cfg, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRecordStoreFromConfig() error = %v", err)
			}
			defer s.Close()

			switch tt.wantType {
			case "csv":
				if _, ok := s.(*CSVStore); !ok {
					t.Errorf("got %T, want *CSVStore", s)
				}
			case "sqlite":
				if _, ok := s.(*SQLiteStore); !ok {
					t.Errorf("got %T, want *SQLiteStore", s)
				}
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "data", "jobtrack.db")); err != nil {
		t.Errorf("sqlite database file not created: %v", err)
	}
}
