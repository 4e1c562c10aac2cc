package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jobtrack/internal/app"
	"jobtrack/internal/calendar"
	"jobtrack/internal/followup"
	"jobtrack/internal/model"
)

func printList(heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for _, l := range lines {
		fmt.Printf("  - %s\n", l)
	}
	fmt.Println()
}

// printAutomations prints the next steps triggered by rec's status.
func printAutomations(rec *model.Application, now time.Time) error {
	steps, err := followup.Automations(rec, now)
	if err != nil {
		return err
	}
	for _, step := range steps {
		switch step.Kind {
		case followup.KindCalendarReminder:
			fmt.Printf("%s\n  %s on %s\n", step.Message, step.Summary, step.When)
			fmt.Printf("  jobtrack calendar interview %s\n\n", rec.ID)
		case followup.KindPrepChecklist:
			printList(step.Message, step.Checklist)
		case followup.KindThankYou:
			fmt.Printf("%s\n  Subject: %s\n\n%s\n\n", step.Message, step.Email.Subject, step.Email.Body)
		default:
			fmt.Printf("%s\n\n", step.Message)
		}
	}
	return nil
}

// email command
var emailCmd = &cobra.Command{
	Use:   "email ID",
	Short: "Draft a follow-up email for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "DraftEmail", func(a *app.JobTrackApp) error {
			rec, err := a.Service().GetApplication(args[0])
			if err != nil {
				return err
			}
			draft, err := followup.Email(rec, a.Service().Now())
			if err != nil {
				return err
			}

			if draft.Recipient != "" {
				fmt.Printf("To: %s\n", draft.Recipient)
			}
			fmt.Printf("Subject: %s\n\n%s\n\n", draft.Subject, draft.Body)
			printList("Tips", draft.Tips)
			return nil
		})
	},
}

// suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest [ID]",
	Short: "Suggest next steps for one application, or general tips",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "Suggest", func(a *app.JobTrackApp) error {
			snap, err := a.Service().Dashboard()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				printList("Tips", followup.GeneralTips(snap.Report))
				return nil
			}

			rec, err := a.Service().GetApplication(args[0])
			if err != nil {
				return err
			}
			s := followup.Suggest(rec, snap.Applications)
			fmt.Printf("%s at %s (%s)\n\n", rec.JobTitle, rec.Company, rec.Status)
			printList("Immediate actions", s.ImmediateActions)
			printList("Warnings", s.Warnings)
			printList("Strategy", s.StrategyTips)
			printList("Optimizations", s.Optimizations)
			return nil
		})
	},
}

// prep command
var prepCmd = &cobra.Command{
	Use:   "prep ID",
	Short: "Interview preparation checklist and notes outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "InterviewPrep", func(a *app.JobTrackApp) error {
			rec, err := a.Service().GetApplication(args[0])
			if err != nil {
				return err
			}

			if followup.PrepOffered(rec.Status) {
				printList(fmt.Sprintf("Interview prep for %s", rec.Company), followup.InterviewPrepChecklist(rec))
			} else {
				fmt.Printf("No interview pending for %s (status %s).\n\n", rec.ID, rec.Status)
			}

			notes := followup.SummarizeNotes(rec.Notes, rec.JobTitle, rec.Company)
			if notes.Empty {
				return nil
			}
			fmt.Printf("%s\n\n", notes.Summary)
			for _, sec := range notes.Sections {
				printList(sec.Heading, sec.Prompts)
			}
			printList("Action items", notes.ActionItems)
			printList("Positive signals", notes.PositiveSignals)
			printList("Red flags", notes.RedFlags)
			return nil
		})
	},
}

// summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Weekly activity summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "WeeklySummary", func(a *app.JobTrackApp) error {
			apps, err := a.Service().ListApplications()
			if err != nil {
				return err
			}
			text, err := followup.WeeklySummary(apps, a.Service().Now())
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		})
	},
}

// calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print calendar event requests as JSON",
}

func printEvent(ev *calendar.EventRequest) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ev)
}

// calendarEventCmd builds a subcommand producing an event for one application.
func calendarEventCmd(use, short, operation string, build func(a *app.JobTrackApp, rec *model.Application) (*calendar.EventRequest, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, operation, func(a *app.JobTrackApp) error {
				rec, err := a.Service().GetApplication(args[0])
				if err != nil {
					return err
				}
				ev, err := build(a, rec)
				if err != nil {
					return err
				}
				return printEvent(ev)
			})
		},
	}
}

var calendarInterviewCmd = calendarEventCmd("interview ID", "Interview event", "CalendarInterview",
	func(a *app.JobTrackApp, rec *model.Application) (*calendar.EventRequest, error) {
		return a.Calendar().InterviewEvent(rec)
	})

var calendarFollowupCmd = calendarEventCmd("followup ID", "Follow-up reminder", "CalendarFollowup",
	func(a *app.JobTrackApp, rec *model.Application) (*calendar.EventRequest, error) {
		return a.Calendar().FollowupReminder(rec, a.Service().Now())
	})

var calendarDeadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Application deadline reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		title, _ := cmd.Flags().GetString("title")
		deadline, _ := cmd.Flags().GetString("deadline")

		return withApp(cmd, "CalendarDeadline", func(a *app.JobTrackApp) error {
			ev, err := a.Calendar().DeadlineReminder(company, title, deadline)
			if err != nil {
				return err
			}
			return printEvent(ev)
		})
	},
}

var calendarBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Events for every scheduled interview and pending follow-up",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "CalendarBatch", func(a *app.JobTrackApp) error {
			apps, err := a.Service().ListApplications()
			if err != nil {
				return err
			}
			reminders, err := a.Calendar().BatchReminders(apps, a.Service().Now())
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipped: %v\n", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Reminders []*calendar.EventRequest `json:"reminders"`
				Total     int                      `json:"total"`
			}{reminders, len(reminders)})
		})
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(prepCmd)
	rootCmd.AddCommand(summaryCmd)

	calendarCmd.AddCommand(calendarInterviewCmd)
	calendarCmd.AddCommand(calendarFollowupCmd)
	calendarCmd.AddCommand(calendarDeadlineCmd)
	calendarCmd.AddCommand(calendarBatchCmd)
	calendarDeadlineCmd.Flags().StringP("company", "c", "", "Company name")
	calendarDeadlineCmd.Flags().StringP("title", "t", "", "Job title")
	calendarDeadlineCmd.Flags().String("deadline", "", "Deadline, YYYY-MM-DD")
	calendarDeadlineCmd.MarkFlagRequired("company")
	calendarDeadlineCmd.MarkFlagRequired("title")
	calendarDeadlineCmd.MarkFlagRequired("deadline")
	rootCmd.AddCommand(calendarCmd)
}
