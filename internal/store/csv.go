package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"jobtrack/internal/atomicfile"
	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

// CSVStore keeps the application table in a single CSV file with the fixed
// header row. It reads the whole file on Load and rewrites the whole file on
// ReplaceAll.
type CSVStore struct {
	path   string
	logger tracker.Logger
}

// NewCSVStore opens the table at path, creating the parent directory and an
// empty table with the header if the file does not exist.
func NewCSVStore(path string, logger tracker.Logger) (*CSVStore, error) {
	if logger == nil {
		logger = tracker.NewNopLogger()
	}
	s := &CSVStore{path: path, logger: logger}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	if err := s.ensureExists(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the table file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads every record in file order. A missing file is re-created empty.
// A file that cannot be parsed is moved aside to <path>.corrupt-<timestamp>
// and replaced with an empty table. A table without an Application ID column
// is left untouched and reported as model.ErrNoIDColumn.
func (s *CSVStore) Load() ([]*model.Application, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, s.ensureExists()
	}
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	apps, err := model.ReadTable(f)
	if errors.Is(err, model.ErrNoIDColumn) {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	if err != nil {
		s.logger.Warn("store is unreadable, starting empty", "path", s.path, "error", err)
		f.Close()
		if err := s.quarantine(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return apps, nil
}

// Append adds one row to the end of the file. If the file's header differs
// from the current column layout the table is rewritten instead, so that
// appended rows always line up with the header. The rewrite keeps only the
// known columns and refreshes derived fields as of app.LastUpdated.
func (s *CSVStore) Append(app *model.Application) error {
	if err := s.ensureExists(); err != nil {
		return err
	}

	header, err := s.readHeader()
	if err != nil || !slices.Equal(header, model.Columns) {
		apps, err := s.Load()
		if err != nil {
			return err
		}
		apps = append(apps, app)
		if now, err := time.Parse(model.DateTimeLayout, app.LastUpdated); err == nil {
			tracker.RefreshAll(apps, now)
		}
		return s.ReplaceAll(apps)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening store for append: %w", err)
	}
	defer f.Close()

	if err := terminateLastLine(f); err != nil {
		return fmt.Errorf("appending %s: %w", app.ID, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(app.Row()); err != nil {
		return fmt.Errorf("appending %s: %w", app.ID, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("appending %s: %w", app.ID, err)
	}
	return f.Sync()
}

// terminateLastLine writes a newline when the file does not already end with
// one, so the next appended row starts on its own line.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte("\n"))
	return err
}

// ReplaceAll rewrites the whole table. The new content is written to a
// temporary file in the same directory and renamed over the old one, so an
// interrupted rewrite leaves the previous table intact.
func (s *CSVStore) ReplaceAll(apps []*model.Application) error {
	var buf bytes.Buffer
	if err := model.WriteTable(&buf, apps); err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return atomicfile.Write(s.path, &buf, 0644, -1)
}

// Close is a no-op; the file is opened per operation.
func (s *CSVStore) Close() error {
	return nil
}

func (s *CSVStore) ensureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking store: %w", err)
	}
	if err := s.ReplaceAll(nil); err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	return nil
}

func (s *CSVStore) readHeader() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	return model.NormalizeHeader(header), nil
}

func (s *CSVStore) quarantine() error {
	aside := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().UTC().Format("20060102T150405Z"))
	if err := os.Rename(s.path, aside); err != nil {
		return fmt.Errorf("moving unreadable store aside: %w", err)
	}
	s.logger.Warn("unreadable store moved aside", "path", aside)
	return s.ensureExists()
}

var _ tracker.RecordStore = (*CSVStore)(nil)
