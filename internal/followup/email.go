package followup

import (
	"fmt"
	"time"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

const defaultContact = "Hiring Manager"

// Statuses with a dedicated email template. Every other status falls back to
// the Applied template.
var emailTemplates = map[model.Status]bool{
	model.StatusApplied:        true,
	model.StatusPhoneScreen:    true,
	model.StatusInterviewed:    true,
	model.StatusFollowupNeeded: true,
}

var emailTips = []string{
	"Personalize: add specific details from your research or previous conversations",
	"Customize: replace [Your Name], [Your Phone], [Your Email] with your actual information",
	"Be specific: reference particular projects or aspects of the role that excite you",
	"Timing: follow-ups do best on Tuesday-Thursday mornings",
	"Keep it brief: hiring managers are busy, respect their time",
}

// EmailDraft is a follow-up email ready for the user to personalize.
type EmailDraft struct {
	Subject   string
	Body      string
	Recipient string
	Tips      []string
}

type emailData struct {
	Company  string
	JobTitle string
	Contact  string
	When     string
}

// Email drafts a follow-up email for app, choosing the template by status.
func Email(app *model.Application, now time.Time) (*EmailDraft, error) {
	contact := app.ContactPerson
	if contact == "" {
		contact = defaultContact
	}
	data := emailData{
		Company:  app.Company,
		JobTitle: app.JobTitle,
		Contact:  contact,
		When:     timePhrase(app.ApplicationDate, now),
	}

	name := model.StatusApplied.String()
	if emailTemplates[app.Status] {
		name = app.Status.String()
	}

	subject, err := render(name+".subject", data)
	if err != nil {
		return nil, fmt.Errorf("rendering subject: %w", err)
	}
	body, err := render(name+".body", data)
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	return &EmailDraft{
		Subject:   subject,
		Body:      body,
		Recipient: app.ContactEmail,
		Tips:      append([]string(nil), emailTips...),
	}, nil
}

// timePhrase describes how long ago the application was sent.
func timePhrase(applicationDate string, now time.Time) string {
	if _, err := model.ParseDate(applicationDate, time.UTC); err != nil {
		return "recently"
	}
	days := tracker.DaysSinceApplied(applicationDate, now)
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "last week"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
