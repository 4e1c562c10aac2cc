package followup

import (
	"fmt"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

// Thresholds for pattern-based strategy tips.
const (
	minAppsForPatterns  = 5
	lowInterviewRate    = 10.0
	greatInterviewRate  = 20.0
	appliedShareWarning = 0.7
	followupNudgeDays   = 7
	networkNudgeDays    = 14
	noResponseAfterDays = 30
)

// Suggestions are rule-based next steps for one application.
type Suggestions struct {
	ImmediateActions []string
	StrategyTips     []string
	Warnings         []string
	Optimizations    []string
}

// Suggest applies the suggestion rules to app. all is the full application
// set, used for pattern-based strategy tips.
func Suggest(app *model.Application, all []*model.Application) *Suggestions {
	s := &Suggestions{}
	days := app.DaysSinceApplied

	if app.Status == model.StatusApplied && days >= followupNudgeDays {
		s.ImmediateActions = append(s.ImmediateActions,
			fmt.Sprintf("It's been %d days since you applied. Consider sending a follow-up email.", days))
	}
	if app.Status == model.StatusApplied && days >= networkNudgeDays {
		s.ImmediateActions = append(s.ImmediateActions,
			"Try finding employees at the company on LinkedIn and asking about the role.")
	}
	if app.FollowupDate == "" {
		s.ImmediateActions = append(s.ImmediateActions,
			"Set a follow-up date (typically 7-10 days after applying) to stay organized.")
	}
	if app.ContactPerson == "" {
		s.ImmediateActions = append(s.ImmediateActions,
			"Try to find the hiring manager's name on LinkedIn or the company website.")
	}
	if app.Status == model.StatusInterviewScheduled || app.Status == model.StatusInterviewed {
		s.ImmediateActions = append(s.ImmediateActions,
			"Research the company thoroughly: recent news, products, culture and competitors.",
			"Prepare STAR method examples for common behavioral questions.")
	}

	s.StrategyTips = strategyTips(all)

	if app.Status == model.StatusApplied && days > noResponseAfterDays {
		s.Warnings = append(s.Warnings, fmt.Sprintf(
			"It's been over a month with no response from %s. Consider moving this to \"Rejected\" and focusing energy elsewhere.", app.Company))
	}
	if app.Status == model.StatusInterviewScheduled && app.InterviewDate == "" {
		s.Warnings = append(s.Warnings,
			"This is marked \"Interview Scheduled\" but no interview date is set. Update the interview date field.")
	}

	s.Optimizations = []string{
		"Connect with employees at target companies on LinkedIn before applying.",
		"Customize your resume and cover letter for each application, highlighting keywords from the job description.",
		"If you have an email from the company (even automated), reply to it rather than sending a cold email.",
		fmt.Sprintf("Research common interview questions for %s roles and prepare answers.", app.JobTitle),
	}

	return s
}

// strategyTips looks at the whole pipeline once there are enough records.
// Only Interviewed and Interview Scheduled count as interviews here.
func strategyTips(all []*model.Application) []string {
	total := len(all)
	if total < minAppsForPatterns {
		return nil
	}

	var interviews, applied int
	for _, a := range all {
		switch a.Status {
		case model.StatusInterviewed, model.StatusInterviewScheduled:
			interviews++
		case model.StatusApplied:
			applied++
		}
	}

	var tips []string
	if float64(interviews)/float64(total)*100 < lowInterviewRate {
		tips = append(tips, "Low interview rate (<10%). Consider tailoring your resume more, improving your cover letter, or targeting roles that better match your experience.")
	}
	if float64(applied) > float64(total)*appliedShareWarning {
		tips = append(tips, "Most applications are still in \"Applied\" status. Try following up more actively, networking to get referrals, or applying to roles where you have connections.")
	}
	return tips
}

// GeneralTips returns pipeline-wide advice, led by an insight on the
// interview rate when there is data.
func GeneralTips(report *tracker.Report) []string {
	var tips []string
	if report != nil && !report.NoData {
		switch rate := report.Metrics.InterviewRate; {
		case rate < lowInterviewRate:
			tips = append(tips, "Your interview rate is below 10%. Consider improving your resume, tailoring applications more, or targeting better-fit roles.")
		case rate > greatInterviewRate:
			tips = append(tips, "Great interview rate! Focus on interview preparation to convert more to offers.")
		}
	}
	return append(tips,
		"Quality over quantity: tailor each application to the role",
		"Network actively: most jobs are filled through networking",
		"Follow up strategically: wait 7-10 days, then send a polite email",
		"Optimize your LinkedIn: recruiters search there daily",
		"Keep learning: add new skills relevant to your target roles",
	)
}
