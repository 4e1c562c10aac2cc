package followup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

func withStatus(status model.Status, n int) []*model.Application {
	out := make([]*model.Application, n)
	for i := range out {
		out[i] = &model.Application{Status: status}
	}
	return out
}

func TestSuggest_ImmediateActions(t *testing.T) {
	tests := []struct {
		name string
		app  model.Application
		want int
	}{
		{"fresh with contact and followup", model.Application{Status: model.StatusApplied, DaysSinceApplied: 2, ContactPerson: "Jane", FollowupDate: "2024-01-20"}, 0},
		{"week old", model.Application{Status: model.StatusApplied, DaysSinceApplied: 7, ContactPerson: "Jane", FollowupDate: "2024-01-20"}, 1},
		{"two weeks old", model.Application{Status: model.StatusApplied, DaysSinceApplied: 14, ContactPerson: "Jane", FollowupDate: "2024-01-20"}, 2},
		{"missing contact and followup", model.Application{Status: model.StatusOfferReceived}, 2},
		{"interview scheduled", model.Application{Status: model.StatusInterviewScheduled, ContactPerson: "Jane", FollowupDate: "2024-01-20", InterviewDate: "2024-01-20 10:00:00"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Suggest(&tt.app, nil)
			assert.Len(t, s.ImmediateActions, tt.want, "%v", s.ImmediateActions)
			assert.Len(t, s.Optimizations, 4)
		})
	}
}

func TestSuggest_Warnings(t *testing.T) {
	old := &model.Application{Company: "Acme", Status: model.StatusApplied, DaysSinceApplied: 31}
	s := Suggest(old, nil)
	assert.Equal(t, []string{
		`It's been over a month with no response from Acme. Consider moving this to "Rejected" and focusing energy elsewhere.`,
	}, s.Warnings)

	scheduled := &model.Application{Status: model.StatusInterviewScheduled}
	s = Suggest(scheduled, nil)
	assert.Len(t, s.Warnings, 1)

	atThreshold := &model.Application{Status: model.StatusApplied, DaysSinceApplied: 30}
	assert.Empty(t, Suggest(atThreshold, nil).Warnings)
}

func TestSuggest_StrategyTips(t *testing.T) {
	app := &model.Application{Status: model.StatusApplied}

	// Too few records for patterns.
	assert.Empty(t, Suggest(app, withStatus(model.StatusApplied, 4)).StrategyTips)

	// All Applied: low interview rate and mostly Applied.
	assert.Len(t, Suggest(app, withStatus(model.StatusApplied, 5)).StrategyTips, 2)

	// One interview in five is 20%, and 4/5 Applied is over 70%.
	mixed := append(withStatus(model.StatusApplied, 4), withStatus(model.StatusInterviewed, 1)...)
	assert.Len(t, Suggest(app, mixed).StrategyTips, 1)

	// Second Interview does not count as an interview for this rule.
	second := append(withStatus(model.StatusSecondInterview, 3), withStatus(model.StatusRejected, 2)...)
	assert.Len(t, Suggest(app, second).StrategyTips, 1)
}

func TestGeneralTips(t *testing.T) {
	assert.Len(t, GeneralTips(nil), 5)
	assert.Len(t, GeneralTips(&tracker.Report{NoData: true}), 5)

	low := GeneralTips(&tracker.Report{Total: 10, Metrics: tracker.Metrics{InterviewRate: 5}})
	assert.Len(t, low, 6)
	assert.Contains(t, low[0], "below 10%")

	middling := GeneralTips(&tracker.Report{Total: 10, Metrics: tracker.Metrics{InterviewRate: 15}})
	assert.Len(t, middling, 5)

	great := GeneralTips(&tracker.Report{Total: 10, Metrics: tracker.Metrics{InterviewRate: 25}})
	assert.Contains(t, great[0], "Great interview rate")
}
