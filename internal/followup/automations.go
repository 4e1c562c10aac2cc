package followup

import (
	"fmt"
	"time"

	"jobtrack/internal/model"
)

// AutomationKind identifies what an automation asks the user to do.
type AutomationKind string

const (
	KindCalendarReminder AutomationKind = "calendar_reminder"
	KindPrepChecklist    AutomationKind = "prep_checklist"
	KindThankYou         AutomationKind = "thank_you_email"
	KindOfferReview      AutomationKind = "offer_review"
)

// suggestedFollowupDays is how long after applying a follow-up is suggested.
const suggestedFollowupDays = 7

// Automation is a next step triggered by an application's status.
type Automation struct {
	Kind    AutomationKind
	Message string

	// Summary and When describe the calendar reminder for KindCalendarReminder.
	Summary string
	When    string

	Checklist []string    // KindPrepChecklist
	Email     *EmailDraft // KindThankYou
}

// Automations returns the steps triggered by app's current status, in the
// order they should be shown. Statuses without triggers yield nil.
func Automations(app *model.Application, now time.Time) ([]Automation, error) {
	switch app.Status {
	case model.StatusInterviewScheduled:
		return []Automation{
			{
				Kind:    KindCalendarReminder,
				Message: fmt.Sprintf("Set calendar reminder for interview at %s", app.Company),
				Summary: fmt.Sprintf("Interview: %s at %s", app.JobTitle, app.Company),
				When:    app.InterviewDate,
			},
			{
				Kind:      KindPrepChecklist,
				Message:   "Review interview preparation checklist",
				Checklist: InterviewPrepChecklist(app),
			},
		}, nil

	case model.StatusInterviewed, model.StatusPhoneScreen:
		draft, err := Email(app, now)
		if err != nil {
			return nil, err
		}
		return []Automation{{
			Kind:    KindThankYou,
			Message: "Send thank-you email within 24 hours",
			Email:   draft,
		}}, nil

	case model.StatusOfferReceived:
		return []Automation{{
			Kind:    KindOfferReview,
			Message: "Congratulations on the offer! Review compensation and benefits carefully.",
		}}, nil
	}
	return nil, nil
}

// SuggestedFollowup returns the application date plus seven days when app has
// no follow-up date of its own. ok is false when a follow-up date is already
// set or the application date cannot be parsed.
func SuggestedFollowup(app *model.Application) (date string, ok bool) {
	if app.FollowupDate != "" {
		return "", false
	}
	applied, err := model.ParseDate(app.ApplicationDate, time.UTC)
	if err != nil {
		return "", false
	}
	return applied.AddDate(0, 0, suggestedFollowupDays).Format(model.DateLayout), true
}
