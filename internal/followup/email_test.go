package followup

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/model"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestTimePhrase(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-15", "0 days ago"},
		{"2024-01-14", "yesterday"},
		{"2024-01-10", "5 days ago"},
		{"2024-01-05", "last week"},
		{"2024-01-01", "2 weeks ago"},
		{"2023-12-17", "4 weeks ago"},
		{"2023-12-01", "1 months ago"},
		{"2023-09-01", "4 months ago"},
		{"last spring", "recently"},
		{"", "recently"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, timePhrase(tt.date, testNow))
		})
	}
}

func TestEmail_TemplateByStatus(t *testing.T) {
	tests := []struct {
		status      model.Status
		wantSubject string
		wantInBody  string
	}{
		{model.StatusApplied, "Following Up on Backend Engineer Application - [Your Name]", "which I submitted 2 weeks ago"},
		{model.StatusPhoneScreen, "Thank You - Backend Engineer Phone Interview", "speak with me 2 weeks ago"},
		{model.StatusInterviewed, "Thank You - Backend Engineer Interview Follow-Up", "thank you again for the interview"},
		{model.StatusFollowupNeeded, "Checking In - Backend Engineer Application Status", "appreciate any update"},
		{model.StatusOfferReceived, "Following Up on Backend Engineer Application - [Your Name]", "which I submitted 2 weeks ago"},
		{model.Status("Ghosted"), "Following Up on Backend Engineer Application - [Your Name]", "which I submitted"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			app := &model.Application{
				Company:         "Acme",
				JobTitle:        "Backend Engineer",
				ApplicationDate: "2024-01-01",
				Status:          tt.status,
				ContactPerson:   "Jane Doe",
				ContactEmail:    "jane@acme.example",
			}

			draft, err := Email(app, testNow)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSubject, draft.Subject)
			assert.Contains(t, draft.Body, tt.wantInBody)
			assert.True(t, strings.HasPrefix(draft.Body, "Dear Jane Doe,\n"))
			assert.Contains(t, draft.Body, "Acme")
			assert.Equal(t, "jane@acme.example", draft.Recipient)
			assert.Len(t, draft.Tips, 5)
		})
	}
}

func TestEmail_DefaultContact(t *testing.T) {
	app := &model.Application{Company: "Acme", JobTitle: "Engineer", ApplicationDate: "bad", Status: model.StatusApplied}

	draft, err := Email(app, testNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(draft.Body, "Dear Hiring Manager,\n"))
	assert.Contains(t, draft.Body, "which I submitted recently.")
	assert.Contains(t, draft.Body, "contribute to Acme's success")
	assert.Empty(t, draft.Recipient)
}
