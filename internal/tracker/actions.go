package tracker

import (
	"fmt"
	"time"

	"jobtrack/internal/model"
)

const upcomingInterviewWindow = 7 * 24 * time.Hour

// ActionItems groups open applications that need attention. The buckets are
// independent: one application may appear in several.
type ActionItems struct {
	NeedsFollowup      []*model.Application
	UpcomingInterviews []*model.Application
	Stale              []*model.Application
}

// ActionItem is a display-ready line for a dashboard.
type ActionItem struct {
	Title       string
	Description string
	Urgent      bool
}

// SelectActions filters open applications into due follow-ups, interviews in
// the next seven days, and Applied records older than two weeks.
func SelectActions(apps []*model.Application, now time.Time) *ActionItems {
	today := WallClock(now)
	items := &ActionItems{}

	for _, app := range apps {
		if app.Status.Closed() {
			continue
		}

		if app.FollowupDate != "" {
			if due, err := model.ParseDate(app.FollowupDate, time.UTC); err == nil && !due.After(today) {
				items.NeedsFollowup = append(items.NeedsFollowup, app)
			}
		}

		if app.InterviewDate != "" {
			if at, err := model.ParseInterviewTime(app.InterviewDate, time.UTC); err == nil &&
				!at.Before(today) && !at.After(today.Add(upcomingInterviewWindow)) {
				items.UpcomingInterviews = append(items.UpcomingInterviews, app)
			}
		}

		if app.Status == model.StatusApplied && app.DaysSinceApplied > staleAfterDays {
			items.Stale = append(items.Stale, app)
		}
	}

	return items
}

// Count returns the total number of entries across all buckets.
func (a *ActionItems) Count() int {
	return len(a.NeedsFollowup) + len(a.UpcomingInterviews) + len(a.Stale)
}

// Items flattens the buckets into display lines; follow-ups are urgent.
func (a *ActionItems) Items() []ActionItem {
	out := make([]ActionItem, 0, a.Count())
	for _, app := range a.NeedsFollowup {
		out = append(out, ActionItem{
			Title:       fmt.Sprintf("Follow up with %s", app.Company),
			Description: fmt.Sprintf("%s - Follow-up date: %s", app.JobTitle, app.FollowupDate),
			Urgent:      true,
		})
	}
	for _, app := range a.UpcomingInterviews {
		out = append(out, ActionItem{
			Title:       fmt.Sprintf("Upcoming interview at %s", app.Company),
			Description: fmt.Sprintf("%s - Interview: %s", app.JobTitle, app.InterviewDate),
		})
	}
	for _, app := range a.Stale {
		out = append(out, ActionItem{
			Title:       fmt.Sprintf("Check status of %s application", app.Company),
			Description: fmt.Sprintf("%s - %d days with no response", app.JobTitle, app.DaysSinceApplied),
		})
	}
	return out
}
