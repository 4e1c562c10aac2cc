package tracker

import (
	"math"
	"time"

	"jobtrack/internal/model"
)

// Applications older than this many days without progress lose score and
// are reported as stale.
const staleAfterDays = 14

var statusWeights = map[model.Status]int{
	model.StatusApplied:            30,
	model.StatusPhoneScreen:        50,
	model.StatusInterviewScheduled: 60,
	model.StatusInterviewed:        70,
	model.StatusSecondInterview:    85,
	model.StatusOfferReceived:      95,
	model.StatusAccepted:           100,
	model.StatusRejected:           0,
	model.StatusWithdrawn:          0,
	model.StatusFollowupNeeded:     40,
}

const defaultStatusWeight = 30

// DaysSinceApplied returns the number of whole days between the application
// date and now, or 0 if the date cannot be parsed.
func DaysSinceApplied(applicationDate string, now time.Time) int {
	applied, err := model.ParseDate(applicationDate, time.UTC)
	if err != nil {
		return 0
	}
	return daysBetween(applied, WallClock(now))
}

// WallClock re-expresses now's local wall-clock reading in UTC so that day
// arithmetic against stored calendar dates is not skewed by DST transitions.
func WallClock(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}

// daysBetween returns the whole days from a to b, rounding down.
func daysBetween(a, b time.Time) int {
	return int(math.Floor(b.Sub(a).Hours() / 24))
}

// SuccessScore is a 0-100 heuristic from the status weight, decayed by two
// points per day once an Applied or Follow-up Needed application is older
// than two weeks (never below 10 from decay alone).
func SuccessScore(status model.Status, days int) int {
	score, ok := statusWeights[status]
	if !ok {
		score = defaultStatusWeight
	}

	if (status == model.StatusApplied || status == model.StatusFollowupNeeded) && days > staleAfterDays {
		score = max(10, score-(days-staleAfterDays)*2)
	}

	return min(100, max(0, score))
}

// Refresh recomputes the derived fields of app relative to now.
func Refresh(app *model.Application, now time.Time) {
	app.DaysSinceApplied = DaysSinceApplied(app.ApplicationDate, now)
	app.SuccessScore = SuccessScore(app.Status, app.DaysSinceApplied)
}

// RefreshAll recomputes derived fields for every application.
func RefreshAll(apps []*model.Application, now time.Time) {
	for _, app := range apps {
		Refresh(app, now)
	}
}
