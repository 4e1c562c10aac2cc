// Package calendar builds calendar event requests for interviews, follow-ups
// and application deadlines. It only produces payloads; creating the event is
// left to whatever calendar client consumes them.
package calendar

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
	_ "time/tzdata" // timezone names resolve without system zoneinfo

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

// Defaults used when the configuration leaves them empty.
const (
	DefaultCalendarID = "primary"
	DefaultTimezone   = "America/New_York"
)

const startLayout = "2006-01-02T15:04:05"

//go:embed templates/*.tmpl
var templateFS embed.FS

var descriptions = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrNoInterviewDate is returned when an interview event is requested for an
// application without an interview date.
var ErrNoInterviewDate = errors.New("no interview date specified")

// EventRequest is the payload for creating one calendar event.
type EventRequest struct {
	RequestID         string   `json:"request_id"`
	CalendarID        string   `json:"calendar_id"`
	Summary           string   `json:"summary"`
	Description       string   `json:"description"`
	StartDateTime     string   `json:"start_datetime"`
	Timezone          string   `json:"timezone"`
	DurationHours     int      `json:"event_duration_hour"`
	DurationMinutes   int      `json:"event_duration_minutes"`
	CreateMeetingRoom bool     `json:"create_meeting_room"`
	Attendees         []string `json:"attendees,omitempty"`
}

// Start parses StartDateTime in the request's timezone.
func (r *EventRequest) Start() (time.Time, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(startLayout, r.StartDateTime, loc)
}

// Builder creates event requests for one calendar and timezone.
type Builder struct {
	calendarID string
	timezone   string
	ids        tracker.IDGenerator
}

// NewBuilder validates timezone and applies defaults for empty values.
func NewBuilder(calendarID, timezone string, ids tracker.IDGenerator) (*Builder, error) {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if ids == nil {
		ids = tracker.UUIDGenerator{}
	}
	return &Builder{calendarID: calendarID, timezone: timezone, ids: ids}, nil
}

// InterviewEvent is a one-hour event at the interview time with a meeting
// room, inviting the contact email when there is one.
func (b *Builder) InterviewEvent(app *model.Application) (*EventRequest, error) {
	if strings.TrimSpace(app.InterviewDate) == "" {
		return nil, ErrNoInterviewDate
	}
	at, err := model.ParseInterviewTime(app.InterviewDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid interview date format: %s", app.InterviewDate)
	}

	req, err := b.event("interview", app, at, 1, 0)
	if err != nil {
		return nil, err
	}
	req.Summary = fmt.Sprintf("Interview: %s at %s", app.JobTitle, app.Company)
	req.CreateMeetingRoom = true
	if app.ContactEmail != "" {
		req.Attendees = []string{app.ContactEmail}
	}
	return req, nil
}

// FollowupReminder is a 30-minute reminder at 09:00 on the follow-up date.
// Without a follow-up date it falls on the application date plus seven days,
// or seven days from now when the application date is unusable.
func (b *Builder) FollowupReminder(app *model.Application, now time.Time) (*EventRequest, error) {
	var day time.Time
	switch {
	case app.FollowupDate != "":
		d, err := model.ParseDate(app.FollowupDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid follow-up date format: %s", app.FollowupDate)
		}
		day = d
	default:
		if applied, err := model.ParseDate(app.ApplicationDate, time.UTC); err == nil {
			day = applied.AddDate(0, 0, 7)
		} else {
			day = midnight(tracker.WallClock(now)).AddDate(0, 0, 7)
		}
	}

	req, err := b.event("followup", app, day.Add(9*time.Hour), 0, 30)
	if err != nil {
		return nil, err
	}
	req.Summary = fmt.Sprintf("Follow up: %s at %s", app.JobTitle, app.Company)
	return req, nil
}

// DeadlineReminder is a one-hour reminder at 10:00 two days before deadline.
func (b *Builder) DeadlineReminder(company, jobTitle, deadline string) (*EventRequest, error) {
	d, err := model.ParseDate(deadline, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline format: %s", deadline)
	}

	data := struct{ Company, JobTitle, Deadline string }{company, jobTitle, deadline}
	req, err := b.event("deadline", data, d.AddDate(0, 0, -2).Add(10*time.Hour), 1, 0)
	if err != nil {
		return nil, err
	}
	req.Summary = fmt.Sprintf("Deadline: Apply to %s at %s", jobTitle, company)
	return req, nil
}

// BatchReminders builds an interview event for every Interview Scheduled
// application with an interview date, and a follow-up reminder for every
// Applied or Follow-up Needed application with a follow-up date. Applications
// whose dates cannot be used are skipped; their errors are joined into err
// alongside the reminders that were built.
func (b *Builder) BatchReminders(apps []*model.Application, now time.Time) (reminders []*EventRequest, err error) {
	var errs []error
	for _, app := range apps {
		var (
			req    *EventRequest
			reqErr error
		)
		switch {
		case app.Status == model.StatusInterviewScheduled && app.InterviewDate != "":
			req, reqErr = b.InterviewEvent(app)
		case (app.Status == model.StatusApplied || app.Status == model.StatusFollowupNeeded) && app.FollowupDate != "":
			req, reqErr = b.FollowupReminder(app, now)
		default:
			continue
		}
		if reqErr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", app.ID, reqErr))
			continue
		}
		reminders = append(reminders, req)
	}
	return reminders, errors.Join(errs...)
}

func (b *Builder) event(tmpl string, data any, start time.Time, hours, minutes int) (*EventRequest, error) {
	var desc strings.Builder
	if err := descriptions.ExecuteTemplate(&desc, tmpl, data); err != nil {
		return nil, fmt.Errorf("rendering %s description: %w", tmpl, err)
	}
	return &EventRequest{
		RequestID:       b.ids.New(),
		CalendarID:      b.calendarID,
		Description:     desc.String(),
		StartDateTime:   start.Format(startLayout),
		Timezone:        b.timezone,
		DurationHours:   hours,
		DurationMinutes: minutes,
	}, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
