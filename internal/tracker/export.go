package tracker

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"jobtrack/internal/model"
)

// ExportResult describes a completed export.
type ExportResult struct {
	Name      string
	Location  string
	Count     int
	Encrypted bool
	Report    *Report
}

// ExportName returns the timestamped file name for an export taken at now.
func ExportName(now time.Time, encrypted bool) string {
	name := fmt.Sprintf("job_applications_export_%s.csv", now.Format("20060102_150405"))
	if encrypted {
		name += ".age"
	}
	return name
}

// Export writes a timestamped copy of the full table to the export
// destination. The primary store is only read.
func (s *Service) Export(ctx context.Context) (*ExportResult, error) {
	if s.exports == nil {
		return nil, fmt.Errorf("no export destination configured")
	}

	apps, err := s.ListApplications()
	if err != nil {
		return nil, err
	}

	var table bytes.Buffer
	if err := model.WriteTable(&table, apps); err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	payload := &table
	encrypted := s.encryptor != nil
	if encrypted {
		var sealed bytes.Buffer
		if err := s.encryptor.Encrypt(&table, &sealed); err != nil {
			return nil, fmt.Errorf("encrypting export: %w", err)
		}
		payload = &sealed
	}

	now := s.clock.Now()
	name := ExportName(now, encrypted)
	size := int64(payload.Len())
	location, err := s.exports.Put(ctx, name, payload, size)
	if err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}

	s.logger.Info("applications exported", "location", location, "count", len(apps), "encrypted", encrypted)
	return &ExportResult{
		Name:      name,
		Location:  location,
		Count:     len(apps),
		Encrypted: encrypted,
		Report:    Analyze(apps, now),
	}, nil
}
