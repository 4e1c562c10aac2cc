package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLineHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		opID    string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			opID:    "op-123",
			level:   slog.LevelInfo,
			message: "application added",
			want:    "2024-06-15T14:30:45Z\tINFO\top-123\tapplication added\n",
		},
		{
			name:    "debug level",
			opID:    "op-456",
			level:   slog.LevelDebug,
			message: "ignoring update to column",
			want:    "2024-06-15T14:30:45Z\tDEBUG\top-456\tignoring update to column\n",
		},
		{
			name:    "with record attrs",
			opID:    "op-789",
			level:   slog.LevelInfo,
			message: "applications exported",
			attrs:   []slog.Attr{slog.String("location", "/tmp/export.csv"), slog.Int("count", 42)},
			want:    "2024-06-15T14:30:45Z\tINFO\top-789\tapplications exported\tlocation=/tmp/export.csv\tcount=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &lineHandler{w: &buf, opID: tt.opID}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestLineHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &lineHandler{w: &buf, opID: "op-1"}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "store")}).(*lineHandler)

	r := slog.NewRecord(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), slog.LevelInfo, "load", 0)
	r.AddAttrs(slog.String("id", "APP001"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=store") {
		t.Errorf("expected pre-set attr component=store, got: %q", got)
	}
	if !strings.Contains(got, "id=APP001") {
		t.Errorf("expected record attr id=APP001, got: %q", got)
	}
}

func TestLineHandler_WithAttrs_doesNotMutateOriginal(t *testing.T) {
	h := &lineHandler{w: &bytes.Buffer{}, opID: "op-1", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*lineHandler)

	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}
	if len(h2.attrs) != 2 {
		t.Errorf("new handler attrs: got %d, want 2", len(h2.attrs))
	}
}

func TestLineHandler_Enabled(t *testing.T) {
	ctx := context.Background()

	all := &lineHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !all.Enabled(ctx, level) {
			t.Errorf("Enabled(%v) without a level = false, want true", level)
		}
	}

	warn := &lineHandler{level: slog.LevelWarn}
	if warn.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled(INFO) at WARN = true, want false")
	}
	if !warn.Enabled(ctx, slog.LevelError) {
		t.Error("Enabled(ERROR) at WARN = false, want true")
	}
}

func TestTeeHandler_RoutesByLevel(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := slog.New(teeHandler{
		&lineHandler{w: &file, level: slog.LevelDebug, opID: "op"},
		&lineHandler{w: &stderr, level: slog.LevelWarn, opID: "op"},
	}).With("operation", "Export")

	logger.Info("applications exported")
	logger.Warn("operation failed")

	if got := strings.Count(file.String(), "\n"); got != 2 {
		t.Errorf("file handler got %d lines, want 2:\n%s", got, file.String())
	}
	if strings.Contains(stderr.String(), "applications exported") {
		t.Errorf("stderr handler received an INFO record: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "operation failed\toperation=Export") {
		t.Errorf("stderr handler missing WARN record with attrs: %q", stderr.String())
	}
}

func TestNewLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	logger, f, err := newLogger(dir, "test-op")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	logger.Debug("written to file only", "id", "APP001")

	data, err := os.ReadFile(filepath.Join(dir, "jobtrack.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "\ttest-op\twritten to file only\tid=APP001") {
		t.Errorf("log file content = %q", data)
	}
}
