package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/model"
)

func ids(apps []*model.Application) []string {
	out := []string{}
	for _, a := range apps {
		out = append(out, a.ID)
	}
	return out
}

func TestSelectActions(t *testing.T) {
	dueAndStale := app("APP001", "Acme", model.StatusApplied, 18, 20)
	dueAndStale.FollowupDate = "2024-01-15"

	tomorrow := app("APP002", "Globex", model.StatusInterviewScheduled, 60, 3)
	tomorrow.InterviewDate = "2024-01-16 14:00:00"

	edgeOfWindow := app("APP003", "Initech", model.StatusInterviewed, 70, 3)
	edgeOfWindow.InterviewDate = "2024-01-22T10:00:00"

	pastWindow := app("APP004", "Hooli", model.StatusPhoneScreen, 50, 3)
	pastWindow.InterviewDate = "2024-01-22 11:00:00"

	earlierToday := app("APP005", "Umbrella", model.StatusPhoneScreen, 50, 3)
	earlierToday.InterviewDate = "2024-01-15 09:00:00"

	rejected := app("APP006", "Wonka", model.StatusRejected, 0, 30)
	rejected.FollowupDate = "2024-01-01"
	rejected.InterviewDate = "2024-01-16 09:00:00"

	notYetStale := app("APP007", "Stark", model.StatusApplied, 30, 14)

	withdrawn := app("APP008", "Wayne", model.StatusWithdrawn, 0, 30)
	withdrawn.FollowupDate = "2024-01-02"

	notDue := app("APP009", "Cyberdyne", model.StatusApplied, 30, 2)
	notDue.FollowupDate = "2024-01-16"

	badDates := app("APP010", "Tyrell", model.StatusPhoneScreen, 50, 2)
	badDates.FollowupDate = "soon"
	badDates.InterviewDate = "Tuesday"

	staleFollowupNeeded := app("APP011", "Soylent", model.StatusFollowupNeeded, 10, 40)

	apps := []*model.Application{
		dueAndStale, tomorrow, edgeOfWindow, pastWindow, earlierToday,
		rejected, notYetStale, withdrawn, notDue, badDates, staleFollowupNeeded,
	}

	items := SelectActions(apps, testNow)

	assert.Equal(t, []string{"APP001"}, ids(items.NeedsFollowup))
	assert.Equal(t, []string{"APP002", "APP003"}, ids(items.UpcomingInterviews))
	// Only Applied records count as stale.
	assert.Equal(t, []string{"APP001"}, ids(items.Stale))
	assert.Equal(t, 4, items.Count())
}

func TestSelectActions_Empty(t *testing.T) {
	items := SelectActions(nil, testNow)

	assert.Equal(t, 0, items.Count())
	assert.Empty(t, items.Items())
}

func TestActionItems_Items(t *testing.T) {
	followup := app("APP001", "Acme", model.StatusApplied, 30, 20)
	followup.FollowupDate = "2024-01-10"
	interview := app("APP002", "Globex", model.StatusInterviewScheduled, 60, 3)
	interview.InterviewDate = "2024-01-16 14:00:00"

	items := &ActionItems{
		NeedsFollowup:      []*model.Application{followup},
		UpcomingInterviews: []*model.Application{interview},
		Stale:              []*model.Application{followup},
	}

	assert.Equal(t, []ActionItem{
		{Title: "Follow up with Acme", Description: "Engineer - Follow-up date: 2024-01-10", Urgent: true},
		{Title: "Upcoming interview at Globex", Description: "Engineer - Interview: 2024-01-16 14:00:00"},
		{Title: "Check status of Acme application", Description: "Engineer - 20 days with no response"},
	}, items.Items())
}
