package tracker

import (
	"fmt"
	"strings"
	"time"

	"jobtrack/internal/model"
)

// Service coordinates the record store, derived-field recomputation and the
// export destination for the CLI. It is the only writer of the store.
type Service struct {
	store     RecordStore
	exports   ExportDestination
	encryptor Encryptor
	logger    Logger
	clock     Clock
}

// NewService creates a Service. encryptor may be nil, in which case exports
// are written in plaintext.
func NewService(store RecordStore, exports ExportDestination, encryptor Encryptor, logger Logger, clock Clock) *Service {
	return &Service{
		store:     store,
		exports:   exports,
		encryptor: encryptor,
		logger:    logger,
		clock:     clock,
	}
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// AddApplication validates input, assigns the next application ID, computes
// the derived fields and appends the record to the store. An empty
// application date means today on the service clock.
func (s *Service) AddApplication(input NewApplication) (*model.Application, error) {
	if input.ApplicationDate == "" {
		input.ApplicationDate = s.clock.Now().Format(model.DateLayout)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := model.StatusApplied
	if input.Status != "" {
		status, _ = model.ParseStatus(input.Status)
	}

	existing, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}

	now := s.clock.Now()
	app := &model.Application{
		ID:              NextID(existing),
		Company:         strings.TrimSpace(input.Company),
		JobTitle:        strings.TrimSpace(input.JobTitle),
		ApplicationDate: input.ApplicationDate,
		Status:          status,
		ContactPerson:   input.ContactPerson,
		ContactEmail:    input.ContactEmail,
		SalaryRange:     input.SalaryRange,
		JobURL:          input.JobURL,
		InterviewDate:   input.InterviewDate,
		FollowupDate:    input.FollowupDate,
		Notes:           input.Notes,
		LastUpdated:     now.Format(model.DateTimeLayout),
	}
	Refresh(app, now)

	if err := s.store.Append(app); err != nil {
		return nil, fmt.Errorf("appending application: %w", err)
	}

	s.logger.Info("application added", "id", app.ID, "company", app.Company, "status", app.Status)
	return app, nil
}

// UpdateApplication applies the given column updates to the first record with
// a matching ID and rewrites the store. Unknown columns and the identifier and
// derived columns are ignored. Any status may follow any other.
// Returns an error wrapping ErrNotFound if no record matches.
func (s *Service) UpdateApplication(id string, updates map[string]string) (*model.Application, error) {
	apps, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}

	var target *model.Application
	for _, app := range apps {
		if app.ID == id {
			target = app
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	for col, value := range updates {
		if err := validateColumn(col, value); err != nil {
			return nil, err
		}
	}
	for col, value := range updates {
		if col == model.ColStatus {
			st, _ := model.ParseStatus(value)
			value = string(st)
		}
		if !target.Set(col, value) {
			s.logger.Debug("ignoring update to column", "id", id, "column", col)
		}
	}

	now := s.clock.Now()
	RefreshAll(apps, now)
	target.LastUpdated = now.Format(model.DateTimeLayout)

	if err := s.store.ReplaceAll(apps); err != nil {
		return nil, fmt.Errorf("rewriting applications: %w", err)
	}

	s.logger.Info("application updated", "id", id, "status", target.Status)
	return target, nil
}

// ListApplications loads every record and recomputes its derived fields
// against the current time. The result is a snapshot owned by the caller.
func (s *Service) ListApplications() ([]*model.Application, error) {
	apps, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}
	RefreshAll(apps, s.clock.Now())
	return apps, nil
}

// GetApplication returns the record with the given ID.
func (s *Service) GetApplication(id string) (*model.Application, error) {
	apps, err := s.ListApplications()
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FindApplication returns the first record for the given company and job title.
func (s *Service) FindApplication(company, jobTitle string) (*model.Application, error) {
	apps, err := s.ListApplications()
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		if app.Company == company && app.JobTitle == jobTitle {
			return app, nil
		}
	}
	return nil, fmt.Errorf("%w: %s at %s", ErrNotFound, jobTitle, company)
}

// Snapshot is a read-only view for presentation layers, valid only for the
// call that produced it.
type Snapshot struct {
	GeneratedAt  time.Time
	Applications []*model.Application
	Report       *Report
	Actions      *ActionItems
}

// Dashboard loads the records once and derives analytics and action items
// from that single snapshot.
func (s *Service) Dashboard() (*Snapshot, error) {
	apps, err := s.ListApplications()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	return &Snapshot{
		GeneratedAt:  now,
		Applications: apps,
		Report:       Analyze(apps, now),
		Actions:      SelectActions(apps, now),
	}, nil
}

// NextID returns the ID following the highest APP-numbered ID in apps.
// IDs without the APP prefix are ignored.
func NextID(apps []*model.Application) string {
	highest := 0
	for _, app := range apps {
		if n, ok := model.ParseID(app.ID); ok && n > highest {
			highest = n
		}
	}
	return model.FormatID(highest + 1)
}
