package followup

import (
	"fmt"
	"strings"

	"jobtrack/internal/model"
)

// PrepOffered reports whether an interview prep checklist applies to status.
func PrepOffered(status model.Status) bool {
	return status == model.StatusInterviewScheduled || status == model.StatusPhoneScreen
}

// InterviewPrepChecklist lists preparation steps for an interview at app's company.
func InterviewPrepChecklist(app *model.Application) []string {
	company := app.Company
	if company == "" {
		company = "the company"
	}
	title := app.JobTitle
	if title == "" {
		title = "this role"
	}

	return []string{
		fmt.Sprintf("Research %s: mission, values, recent news, products/services, competitors", company),
		fmt.Sprintf("Review the job description for %s and identify key requirements", title),
		"Prepare 5-7 STAR method examples showcasing your relevant experience",
		"Prepare questions to ask the interviewer (about role, team, culture, growth)",
		"Review your resume and be ready to discuss every point in detail",
		"Practice common interview questions out loud",
		"Research your interviewer on LinkedIn (if you know who it is)",
		"Prepare your workspace (if virtual) or plan your route (if in-person)",
		"Test your tech setup (camera, mic, internet) if virtual interview",
		"Plan your outfit (professional and comfortable)",
		"Print extra copies of your resume and have a notepad ready",
		"Prepare a brief 30-60 second \"tell me about yourself\" pitch",
		"Have examples ready of: leadership, teamwork, conflict resolution, and problem-solving",
		"Research typical salary range for this role in your location",
		"Prepare thoughtful questions about the role, team dynamics, and success metrics",
	}
}

const minNotesLength = 10

// NotesSection is one heading of the interview write-up outline.
type NotesSection struct {
	Heading string
	Prompts []string
}

// NotesSummary is a structured outline for reviewing interview notes.
type NotesSummary struct {
	Empty           bool
	Summary         string
	Sections        []NotesSection
	ActionItems     []string
	PositiveSignals []string
	RedFlags        []string
	RawNotes        string
}

// SummarizeNotes returns an outline for writing up an interview. Notes shorter
// than ten characters (ignoring surrounding space) produce an empty summary.
func SummarizeNotes(notes, jobTitle, company string) *NotesSummary {
	if len(strings.TrimSpace(notes)) < minNotesLength {
		return &NotesSummary{
			Empty:   true,
			Summary: "No interview notes available to summarize.",
		}
	}

	return &NotesSummary{
		Summary: fmt.Sprintf("Interview Summary for %s at %s", jobTitle, company),
		Sections: []NotesSection{
			{"Overview", []string{"Who you met, the format and the duration"}},
			{"Key Discussion Points", []string{
				"Main topics covered during the interview",
				"Questions they asked you",
				"Questions you asked them",
			}},
			{"Technical Assessment", []string{"Technical questions or challenges that came up"}},
			{"Cultural Fit", []string{"Your impressions of company culture and team dynamics"}},
			{"Compensation & Benefits", []string{"Any discussion about salary, benefits or perks"}},
			{"Next Steps", []string{"What they said about timeline and next steps"}},
		},
		ActionItems: []string{
			"Send thank-you email within 24 hours",
			"Research any topics mentioned that you need to learn more about",
			"Prepare materials they requested (portfolio, references, etc.)",
			"Set follow-up reminder if you don't hear back in their stated timeline",
		},
		PositiveSignals: []string{
			"Discussed specific projects you'd work on",
			"Introduced you to other team members",
			"Asked about your availability or start date",
			"Discussed compensation or benefits",
			"Spent more time than scheduled",
			"Asked detailed questions about your experience",
		},
		RedFlags: []string{
			"Couldn't clearly explain the role",
			"Mentioned high turnover",
			"Unrealistic expectations or workload",
			"Poor communication or disorganization",
			"Vague about compensation",
			"Negative comments about current/former employees",
		},
		RawNotes: notes,
	}
}
