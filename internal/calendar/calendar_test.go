package calendar

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/model"
	"jobtrack/internal/testutil"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder("", "", testutil.NewStubIDGenerator())
	require.NoError(t, err)
	return b
}

func TestNewBuilder(t *testing.T) {
	b := newTestBuilder(t)
	assert.Equal(t, DefaultCalendarID, b.calendarID)
	assert.Equal(t, DefaultTimezone, b.timezone)

	b, err := NewBuilder("work", "Europe/Berlin", nil)
	require.NoError(t, err)
	assert.Equal(t, "work", b.calendarID)
	assert.Equal(t, "Europe/Berlin", b.timezone)

	_, err = NewBuilder("", "Mars/Olympus_Mons", nil)
	assert.Error(t, err)
}

func TestInterviewEvent(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
	}{
		{"space separated", "2024-01-18 14:00:00", "2024-01-18T14:00:00"},
		{"T separated", "2024-01-18T09:30:00", "2024-01-18T09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			app := &model.Application{
				Company:       "Acme",
				JobTitle:      "SRE",
				InterviewDate: tt.date,
				ContactPerson: "Jane Doe",
				ContactEmail:  "jane@acme.example",
			}

			req, err := b.InterviewEvent(app)
			require.NoError(t, err)

			assert.Equal(t, "id-1", req.RequestID)
			assert.Equal(t, "primary", req.CalendarID)
			assert.Equal(t, "Interview: SRE at Acme", req.Summary)
			assert.Equal(t, tt.wantStart, req.StartDateTime)
			assert.Equal(t, "America/New_York", req.Timezone)
			assert.Equal(t, 1, req.DurationHours)
			assert.Equal(t, 0, req.DurationMinutes)
			assert.True(t, req.CreateMeetingRoom)
			assert.Equal(t, []string{"jane@acme.example"}, req.Attendees)
			assert.Contains(t, req.Description, "Contact: Jane Doe")
			assert.Contains(t, req.Description, "Job Posting: Not specified")
			assert.Contains(t, req.Description, "No additional notes")
		})
	}
}

func TestInterviewEvent_Errors(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.InterviewEvent(&model.Application{Company: "Acme"})
	assert.True(t, errors.Is(err, ErrNoInterviewDate))

	_, err = b.InterviewEvent(&model.Application{Company: "Acme", InterviewDate: "next Tuesday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next Tuesday")
}

func TestInterviewEvent_NoAttendeeWithoutEmail(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.InterviewEvent(&model.Application{Company: "Acme", InterviewDate: "2024-01-18 14:00:00"})
	require.NoError(t, err)
	assert.Nil(t, req.Attendees)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "attendees")
	assert.Contains(t, string(data), `"start_datetime":"2024-01-18T14:00:00"`)
}

func TestFollowupReminder(t *testing.T) {
	tests := []struct {
		name      string
		app       model.Application
		wantStart string
		wantErr   bool
	}{
		{"follow-up date", model.Application{FollowupDate: "2024-01-20", ApplicationDate: "2024-01-01"}, "2024-01-20T09:00:00", false},
		{"application date plus a week", model.Application{ApplicationDate: "2024-01-28"}, "2024-02-04T09:00:00", false},
		{"unparsable application date", model.Application{ApplicationDate: "January"}, "2024-01-22T09:00:00", false},
		{"no dates", model.Application{}, "2024-01-22T09:00:00", false},
		{"unparsable follow-up date", model.Application{FollowupDate: "soon"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			app := tt.app
			app.Company, app.JobTitle = "Acme", "SRE"

			req, err := b.FollowupReminder(&app, testNow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantStart, req.StartDateTime)
			assert.Equal(t, "Follow up: SRE at Acme", req.Summary)
			assert.Equal(t, 0, req.DurationHours)
			assert.Equal(t, 30, req.DurationMinutes)
			assert.False(t, req.CreateMeetingRoom)
			assert.Empty(t, req.Attendees)
		})
	}
}

func TestBatchReminders(t *testing.T) {
	tests := []struct {
		name        string
		app         model.Application
		wantSummary string
	}{
		{"scheduled interview", model.Application{Status: model.StatusInterviewScheduled, InterviewDate: "2024-01-18 14:00:00"}, "Interview: SRE at Acme"},
		{"scheduled without date", model.Application{Status: model.StatusInterviewScheduled}, ""},
		{"applied with follow-up", model.Application{Status: model.StatusApplied, FollowupDate: "2024-01-20"}, "Follow up: SRE at Acme"},
		{"follow-up needed", model.Application{Status: model.StatusFollowupNeeded, FollowupDate: "2024-01-20"}, "Follow up: SRE at Acme"},
		{"applied without follow-up", model.Application{Status: model.StatusApplied}, ""},
		{"interviewed with dates", model.Application{Status: model.StatusInterviewed, InterviewDate: "2024-01-10 14:00:00", FollowupDate: "2024-01-20"}, ""},
		{"rejected with follow-up", model.Application{Status: model.StatusRejected, FollowupDate: "2024-01-20"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			app := tt.app
			app.ID, app.Company, app.JobTitle = "APP001", "Acme", "SRE"

			reminders, err := b.BatchReminders([]*model.Application{&app}, testNow)
			require.NoError(t, err)

			if tt.wantSummary == "" {
				assert.Empty(t, reminders)
				return
			}
			require.Len(t, reminders, 1)
			assert.Equal(t, tt.wantSummary, reminders[0].Summary)
		})
	}
}

func TestBatchReminders_SkipsUnusableDates(t *testing.T) {
	b := newTestBuilder(t)
	apps := []*model.Application{
		{ID: "APP001", Company: "Acme", JobTitle: "SRE", Status: model.StatusInterviewScheduled, InterviewDate: "next Tuesday"},
		{ID: "APP002", Company: "Initech", JobTitle: "Analyst", Status: model.StatusApplied, FollowupDate: "2024-01-20"},
		{ID: "APP003", Company: "Globex", JobTitle: "SRE", Status: model.StatusFollowupNeeded, FollowupDate: "soon"},
	}

	reminders, err := b.BatchReminders(apps, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP001")
	assert.Contains(t, err.Error(), "APP003")

	require.Len(t, reminders, 1)
	assert.Equal(t, "Follow up: Analyst at Initech", reminders[0].Summary)
	assert.Equal(t, "2024-01-20T09:00:00", reminders[0].StartDateTime)
}

func TestDeadlineReminder(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.DeadlineReminder("Acme", "SRE", "2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-28T10:00:00", req.StartDateTime)
	assert.Equal(t, "Deadline: Apply to SRE at Acme", req.Summary)
	assert.Equal(t, 1, req.DurationHours)
	assert.True(t, strings.HasPrefix(req.Description, "Application Deadline Reminder"))
	assert.Contains(t, req.Description, "Deadline: 2024-03-01")

	_, err = b.DeadlineReminder("Acme", "SRE", "03/01/2024")
	assert.Error(t, err)
}

func TestRequestIDsAreUnique(t *testing.T) {
	b := newTestBuilder(t)

	first, err := b.DeadlineReminder("Acme", "SRE", "2024-03-01")
	require.NoError(t, err)
	second, err := b.DeadlineReminder("Acme", "SRE", "2024-03-01")
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestEventRequest_Start(t *testing.T) {
	b := newTestBuilder(t)
	req, err := b.DeadlineReminder("Acme", "SRE", "2024-07-10")
	require.NoError(t, err)

	start, err := req.Start()
	require.NoError(t, err)
	// 10:00 EDT is 14:00 UTC.
	assert.Equal(t, time.Date(2024, 7, 8, 14, 0, 0, 0, time.UTC), start.UTC())
}
