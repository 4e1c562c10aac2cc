package followup

import (
	"fmt"
	"slices"
	"time"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

const week = 7 * 24 * time.Hour

type statusCount struct {
	Status model.Status
	Count  int
}

type weeklyData struct {
	From, To time.Time
	Recent   int
	Active   int
	Counts   []statusCount
}

// WeeklySummary reports records touched in the seven days before now, the
// number of open applications, and the statuses of the recent records by count.
func WeeklySummary(apps []*model.Application, now time.Time) (string, error) {
	to := tracker.WallClock(now)
	from := to.Add(-week)

	data := weeklyData{From: from, To: to}
	var order []*statusCount
	byStatus := make(map[model.Status]*statusCount)

	for _, app := range apps {
		if !app.Status.Closed() {
			data.Active++
		}

		updated, err := time.Parse(model.DateTimeLayout, app.LastUpdated)
		if err != nil || updated.Before(from) {
			continue
		}
		data.Recent++

		status := app.Status
		if status == "" {
			status = "Unknown"
		}
		c, ok := byStatus[status]
		if !ok {
			c = &statusCount{Status: status}
			byStatus[status] = c
			order = append(order, c)
		}
		c.Count++
	}

	slices.SortStableFunc(order, func(a, b *statusCount) int { return b.Count - a.Count })
	for _, c := range order {
		data.Counts = append(data.Counts, *c)
	}

	out, err := render("weekly", data)
	if err != nil {
		return "", fmt.Errorf("rendering weekly summary: %w", err)
	}
	return out, nil
}
