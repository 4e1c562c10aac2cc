package model

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrNoIDColumn is returned by ReadTable when the header has no Application ID
// column. Such a table cannot be rewritten without losing record identity.
var ErrNoIDColumn = errors.New("table has no " + ColID + " column")

// NormalizeHeader strips a UTF-8 byte order mark from the first name and
// surrounding whitespace from every name.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		out[i] = strings.TrimSpace(name)
	}
	return out
}

// WriteTable encodes apps as a CSV table with the fixed Columns header.
func WriteTable(w io.Writer, apps []*Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, app := range apps {
		if err := cw.Write(app.Row()); err != nil {
			return fmt.Errorf("writing %s: %w", app.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTable decodes a CSV table. The first row is the header; columns are
// matched by name, so tables with reordered or extra columns still load.
// An empty input yields no records; a header without an Application ID column
// yields ErrNoIDColumn.
func ReadTable(r io.Reader) ([]*Application, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header = NormalizeHeader(header)
	if !slices.Contains(header, ColID) {
		return nil, ErrNoIDColumn
	}

	var apps []*Application
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(apps)+1, err)
		}
		if isBlank(row) {
			continue
		}
		apps = append(apps, FromRow(header, row))
	}
	return apps, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
