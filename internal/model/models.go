package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts used by the persisted table.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	isoLayout      = "2006-01-02T15:04:05"
)

// Column names of the persisted table. Order of Columns is significant for
// file compatibility.
const (
	ColID               = "Application ID"
	ColCompany          = "Company Name"
	ColJobTitle         = "Job Title"
	ColApplicationDate  = "Application Date"
	ColStatus           = "Status"
	ColDaysSinceApplied = "Days Since Applied"
	ColContactPerson    = "Contact Person"
	ColContactEmail     = "Contact Email"
	ColSalaryRange      = "Salary Range"
	ColJobURL           = "Job URL"
	ColInterviewDate    = "Interview Date"
	ColFollowupDate     = "Follow-up Date"
	ColNotes            = "Notes"
	ColLastUpdated      = "Last Updated"
	ColSuccessScore     = "Success Score"
)

// Columns is the fixed header of the application table.
var Columns = []string{
	ColID, ColCompany, ColJobTitle, ColApplicationDate,
	ColStatus, ColDaysSinceApplied, ColContactPerson, ColContactEmail,
	ColSalaryRange, ColJobURL, ColInterviewDate, ColFollowupDate,
	ColNotes, ColLastUpdated, ColSuccessScore,
}

// Application is one tracked job application.
// Optional date fields are kept as strings so legacy content round-trips unchanged.
type Application struct {
	ID               string // APP + zero-padded sequence, immutable
	Company          string
	JobTitle         string
	ApplicationDate  string // YYYY-MM-DD
	Status           Status
	DaysSinceApplied int // derived
	ContactPerson    string
	ContactEmail     string
	SalaryRange      string
	JobURL           string
	InterviewDate    string // YYYY-MM-DD HH:MM:SS or YYYY-MM-DDTHH:MM:SS
	FollowupDate     string // YYYY-MM-DD
	Notes            string
	LastUpdated      string // YYYY-MM-DD HH:MM:SS
	SuccessScore     int    // derived, 0-100
}

// Clone returns a copy of the application.
func (a *Application) Clone() *Application {
	c := *a
	return &c
}

// Get returns the value of the named column formatted as it is persisted.
func (a *Application) Get(column string) (string, bool) {
	switch column {
	case ColID:
		return a.ID, true
	case ColCompany:
		return a.Company, true
	case ColJobTitle:
		return a.JobTitle, true
	case ColApplicationDate:
		return a.ApplicationDate, true
	case ColStatus:
		return string(a.Status), true
	case ColDaysSinceApplied:
		return strconv.Itoa(a.DaysSinceApplied), true
	case ColContactPerson:
		return a.ContactPerson, true
	case ColContactEmail:
		return a.ContactEmail, true
	case ColSalaryRange:
		return a.SalaryRange, true
	case ColJobURL:
		return a.JobURL, true
	case ColInterviewDate:
		return a.InterviewDate, true
	case ColFollowupDate:
		return a.FollowupDate, true
	case ColNotes:
		return a.Notes, true
	case ColLastUpdated:
		return a.LastUpdated, true
	case ColSuccessScore:
		return strconv.Itoa(a.SuccessScore), true
	}
	return "", false
}

// Set assigns a user-editable column. It returns false for unknown columns and
// for the identifier and derived columns, which are never set from input.
func (a *Application) Set(column, value string) bool {
	switch column {
	case ColCompany:
		a.Company = value
	case ColJobTitle:
		a.JobTitle = value
	case ColApplicationDate:
		a.ApplicationDate = value
	case ColStatus:
		a.Status = Status(value)
	case ColContactPerson:
		a.ContactPerson = value
	case ColContactEmail:
		a.ContactEmail = value
	case ColSalaryRange:
		a.SalaryRange = value
	case ColJobURL:
		a.JobURL = value
	case ColInterviewDate:
		a.InterviewDate = value
	case ColFollowupDate:
		a.FollowupDate = value
	case ColNotes:
		a.Notes = value
	default:
		return false
	}
	return true
}

// Row encodes the application in Columns order.
func (a *Application) Row() []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i], _ = a.Get(col)
	}
	return row
}

// FromRow decodes a table row using the given header. Missing trailing cells
// are treated as empty and unparsable derived integers as 0.
func FromRow(header, row []string) *Application {
	a := &Application{}
	for i, col := range header {
		var v string
		if i < len(row) {
			v = row[i]
		}
		switch col {
		case ColID:
			a.ID = v
		case ColLastUpdated:
			a.LastUpdated = v
		case ColDaysSinceApplied:
			a.DaysSinceApplied, _ = strconv.Atoi(strings.TrimSpace(v))
		case ColSuccessScore:
			a.SuccessScore, _ = strconv.Atoi(strings.TrimSpace(v))
		default:
			a.Set(col, v)
		}
	}
	return a
}

// FormatID returns the application ID for sequence number n.
func FormatID(n int) string {
	return fmt.Sprintf("APP%03d", n)
}

// ParseID extracts the numeric sequence from an application ID.
func ParseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "APP")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// ParseInterviewTime parses an interview date-time in either the space or the
// "T" separated form.
func ParseInterviewTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(isoLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid interview date %q: want %s", s, DateTimeLayout)
	}
	return t, nil
}
