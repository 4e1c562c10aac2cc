package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobtrack/internal/model"
	"jobtrack/internal/store/migrations"
	"jobtrack/internal/tracker"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const selectApplications = `
SELECT id, company, job_title, application_date, status, days_since_applied,
       contact_person, contact_email, salary_range, job_url, interview_date,
       followup_date, notes, last_updated, success_score
FROM applications
ORDER BY seq`

const insertApplication = `
INSERT INTO applications (
    id, company, job_title, application_date, status, days_since_applied,
    contact_person, contact_email, salary_range, job_url, interview_date,
    followup_date, notes, last_updated, success_score
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLiteStore keeps the application table in SQLite. Storage order is the
// autoincrement seq column, so ReplaceAll preserves the order it is given.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the database at path (or ":memory:"), applies pending
// migrations and verifies the schema version.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.CheckMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store schema out of date: %w", err)
	}
	return s, nil
}

// OpenConnection opens and configures a SQLite connection.
// In-memory databases are pinned to a single connection so that every query
// sees the same database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) Load() ([]*model.Application, error) {
	rows, err := s.db.QueryContext(context.Background(), selectApplications)
	if err != nil {
		return nil, fmt.Errorf("querying applications: %w", err)
	}
	defer rows.Close()

	var apps []*model.Application
	for rows.Next() {
		var app model.Application
		var status string
		if err := rows.Scan(
			&app.ID, &app.Company, &app.JobTitle, &app.ApplicationDate, &status, &app.DaysSinceApplied,
			&app.ContactPerson, &app.ContactEmail, &app.SalaryRange, &app.JobURL, &app.InterviewDate,
			&app.FollowupDate, &app.Notes, &app.LastUpdated, &app.SuccessScore,
		); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		app.Status = model.Status(status)
		apps = append(apps, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}
	return apps, nil
}

func (s *SQLiteStore) Append(app *model.Application) error {
	if err := insert(context.Background(), s.db, app); err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}
	return nil
}

// ReplaceAll deletes every row and re-inserts apps in one transaction.
func (s *SQLiteStore) ReplaceAll(apps []*model.Application) error {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM applications"); err != nil {
		return fmt.Errorf("clearing applications: %w", err)
	}
	for _, app := range apps {
		if err := insert(ctx, tx, app); err != nil {
			return fmt.Errorf("inserting %s: %w", app.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insert(ctx context.Context, db execer, app *model.Application) error {
	_, err := db.ExecContext(ctx, insertApplication,
		app.ID, app.Company, app.JobTitle, app.ApplicationDate, string(app.Status), app.DaysSinceApplied,
		app.ContactPerson, app.ContactEmail, app.SalaryRange, app.JobURL, app.InterviewDate,
		app.FollowupDate, app.Notes, app.LastUpdated, app.SuccessScore,
	)
	return err
}

// Path returns the database file path (or ":memory:").
func (s *SQLiteStore) Path() string {
	return s.path
}

// CheckMigrations verifies the schema is up-to-date.
func (s *SQLiteStore) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ tracker.RecordStore = (*SQLiteStore)(nil)
