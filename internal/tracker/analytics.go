package tracker

import (
	"math"
	"slices"
	"time"

	"jobtrack/internal/model"
)

const topCompaniesLimit = 5

// Report aggregates the full application set.
type Report struct {
	NoData                  bool
	Message                 string
	Total                   int
	Active                  int
	StatusBreakdown         map[model.Status]int
	Metrics                 Metrics
	AverageDaysSinceApplied float64
	NeedsFollowup           []OverdueFollowup
	TopCompanies            []CompanyScore
}

// Metrics are percentages of the total, rounded to one decimal place.
type Metrics struct {
	InterviewRate  float64
	OfferRate      float64
	AcceptanceRate float64
	RejectionRate  float64
}

// OverdueFollowup is an open application whose follow-up date has passed.
type OverdueFollowup struct {
	ID           string
	Company      string
	JobTitle     string
	FollowupDate string
	DaysOverdue  int
}

// CompanyScore is a company's mean success score.
type CompanyScore struct {
	Company  string
	AvgScore float64
}

// Analyze computes status counts, rate metrics, overdue follow-ups and the
// top companies by mean success score. The derived fields on apps are used
// as given; callers refresh them first.
func Analyze(apps []*model.Application, now time.Time) *Report {
	if len(apps) == 0 {
		return &Report{
			NoData:          true,
			Message:         "No applications tracked yet",
			StatusBreakdown: map[model.Status]int{},
		}
	}

	r := &Report{
		Total:           len(apps),
		StatusBreakdown: make(map[model.Status]int),
	}

	var interviewed, offers, accepted, rejected, totalDays int
	for _, app := range apps {
		r.StatusBreakdown[app.Status]++
		totalDays += app.DaysSinceApplied

		switch app.Status {
		case model.StatusInterviewed, model.StatusSecondInterview, model.StatusInterviewScheduled:
			interviewed++
		case model.StatusOfferReceived:
			offers++
		case model.StatusAccepted:
			accepted++
		case model.StatusRejected:
			rejected++
		}

		if !app.Status.Closed() {
			r.Active++
		}
	}

	r.Metrics = Metrics{
		InterviewRate:  percent(interviewed, r.Total),
		OfferRate:      percent(offers, r.Total),
		AcceptanceRate: percent(accepted, r.Total),
		RejectionRate:  percent(rejected, r.Total),
	}
	r.AverageDaysSinceApplied = round1(float64(totalDays) / float64(r.Total))
	r.NeedsFollowup = overdueFollowups(apps, now)
	r.TopCompanies = topCompanies(apps, topCompaniesLimit)

	return r
}

// overdueFollowups lists records that are not Rejected or Accepted whose
// follow-up date is on or before now. Withdrawn records are still included.
func overdueFollowups(apps []*model.Application, now time.Time) []OverdueFollowup {
	today := WallClock(now)
	var out []OverdueFollowup
	for _, app := range apps {
		if app.FollowupDate == "" || app.Status == model.StatusRejected || app.Status == model.StatusAccepted {
			continue
		}
		due, err := model.ParseDate(app.FollowupDate, time.UTC)
		if err != nil || due.After(today) {
			continue
		}
		out = append(out, OverdueFollowup{
			ID:           app.ID,
			Company:      app.Company,
			JobTitle:     app.JobTitle,
			FollowupDate: app.FollowupDate,
			DaysOverdue:  daysBetween(due, today),
		})
	}
	return out
}

// topCompanies ranks companies by mean success score, keeping first-seen
// order among equal means.
func topCompanies(apps []*model.Application, limit int) []CompanyScore {
	type agg struct {
		company string
		sum     int
		n       int
	}
	var order []*agg
	byName := make(map[string]*agg)
	for _, app := range apps {
		a, ok := byName[app.Company]
		if !ok {
			a = &agg{company: app.Company}
			byName[app.Company] = a
			order = append(order, a)
		}
		a.sum += app.SuccessScore
		a.n++
	}

	slices.SortStableFunc(order, func(x, y *agg) int {
		mx := float64(x.sum) / float64(x.n)
		my := float64(y.sum) / float64(y.n)
		switch {
		case mx > my:
			return -1
		case mx < my:
			return 1
		}
		return 0
	})

	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]CompanyScore, len(order))
	for i, a := range order {
		out[i] = CompanyScore{Company: a.company, AvgScore: round1(float64(a.sum) / float64(a.n))}
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(n) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
