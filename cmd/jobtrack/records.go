package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"jobtrack/internal/app"
	"jobtrack/internal/dashboard"
	"jobtrack/internal/followup"
	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

// renderer returns a dashboard renderer sized from config or the terminal.
func renderer(a *app.JobTrackApp) *dashboard.Renderer {
	width := a.DashboardWidth()
	if width <= 0 {
		width = dashboard.TerminalWidth(os.Stdout)
	}
	return dashboard.New(os.Stdout, width)
}

// add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new application",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		input := tracker.NewApplication{}
		input.Company, _ = f.GetString("company")
		input.JobTitle, _ = f.GetString("title")
		input.ApplicationDate, _ = f.GetString("date")
		input.Status, _ = f.GetString("status")
		input.ContactPerson, _ = f.GetString("contact")
		input.ContactEmail, _ = f.GetString("email")
		input.SalaryRange, _ = f.GetString("salary")
		input.JobURL, _ = f.GetString("url")
		input.InterviewDate, _ = f.GetString("interview")
		input.FollowupDate, _ = f.GetString("followup")
		input.Notes, _ = f.GetString("notes")

		return withApp(cmd, "AddApplication", func(a *app.JobTrackApp) error {
			rec, err := a.AddApplication(input)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s: %s at %s (%s)\n", rec.ID, rec.JobTitle, rec.Company, rec.Status)
			if date, ok := followup.SuggestedFollowup(rec); ok {
				fmt.Printf("Suggested follow-up date: %s\n", date)
			}
			fmt.Println()

			apps, err := a.Service().ListApplications()
			if err != nil {
				return err
			}
			s := followup.Suggest(rec, apps)
			printList("Immediate actions", s.ImmediateActions)
			printList("Warnings", s.Warnings)
			return printAutomations(rec, a.Service().Now())
		})
	},
}

// update command
var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update fields of an application",
	Long: "Update fields of an application. Use --set \"Column=Value\" with any column name,\n" +
		"or the shortcut flags for the common ones.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updates, err := collectUpdates(cmd)
		if err != nil {
			return err
		}

		return withApp(cmd, "UpdateApplication", func(a *app.JobTrackApp) error {
			rec, err := a.UpdateApplication(args[0], updates)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s: %s at %s (%s, score %d)\n",
				rec.ID, rec.JobTitle, rec.Company, rec.Status, rec.SuccessScore)
			if _, ok := updates[model.ColStatus]; !ok {
				return nil
			}
			fmt.Println()
			return printAutomations(rec, a.Service().Now())
		})
	},
}

var shortcutColumns = []struct {
	flag   string
	column string
}{
	{"status", model.ColStatus},
	{"notes", model.ColNotes},
	{"interview", model.ColInterviewDate},
	{"followup", model.ColFollowupDate},
}

// collectUpdates merges --set pairs and the shortcut flags into a column map.
func collectUpdates(cmd *cobra.Command) (map[string]string, error) {
	updates := make(map[string]string)

	pairs, _ := cmd.Flags().GetStringArray("set")
	for _, p := range pairs {
		col, value, ok := strings.Cut(p, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --set %q: want Column=Value", p)
		}
		if !slices.Contains(model.Columns, col) {
			return nil, fmt.Errorf("unknown column %q", col)
		}
		updates[col] = value
	}

	for _, s := range shortcutColumns {
		if cmd.Flags().Changed(s.flag) {
			updates[s.column], _ = cmd.Flags().GetString(s.flag)
		}
	}
	return updates, nil
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "ListApplications", func(a *app.JobTrackApp) error {
			apps, err := a.Service().ListApplications()
			if err != nil {
				return err
			}
			if len(apps) == 0 {
				fmt.Println("No applications tracked yet.")
				return nil
			}
			return renderer(a).Table(apps)
		})
	},
}

// show command
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show every field of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "GetApplication", func(a *app.JobTrackApp) error {
			rec, err := a.Service().GetApplication(args[0])
			if err != nil {
				return err
			}
			for _, col := range model.Columns {
				v, _ := rec.Get(col)
				fmt.Printf("%-20s %s\n", col+":", v)
			}
			return nil
		})
	},
}

// dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show analytics, action items and the application table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "Dashboard", func(a *app.JobTrackApp) error {
			snap, err := a.Service().Dashboard()
			if err != nil {
				return err
			}
			return renderer(a).Dashboard(snap)
		})
	},
}

// actions command
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List applications that need attention",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, "Actions", func(a *app.JobTrackApp) error {
			snap, err := a.Service().Dashboard()
			if err != nil {
				return err
			}

			items := snap.Actions.Items()
			if len(items) == 0 {
				fmt.Println("No action items. You're all caught up.")
				return nil
			}
			for _, item := range items {
				marker := " "
				if item.Urgent {
					marker = "!"
				}
				fmt.Printf("[%s] %s\n    %s\n", marker, item.Title, item.Description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("company", "c", "", "Company name (required)")
	addCmd.Flags().StringP("title", "t", "", "Job title (required)")
	addCmd.Flags().StringP("date", "d", "", "Application date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringP("status", "s", "", "Initial status (default Applied)")
	addCmd.Flags().String("contact", "", "Contact person")
	addCmd.Flags().String("email", "", "Contact email")
	addCmd.Flags().String("salary", "", "Salary range")
	addCmd.Flags().String("url", "", "Job posting URL")
	addCmd.Flags().String("interview", "", "Interview date and time, YYYY-MM-DD HH:MM:SS")
	addCmd.Flags().String("followup", "", "Follow-up date, YYYY-MM-DD")
	addCmd.Flags().StringP("notes", "n", "", "Notes")
	addCmd.MarkFlagRequired("company")
	addCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringArray("set", nil, "Column=Value pair, repeatable")
	updateCmd.Flags().StringP("status", "s", "", "New status")
	updateCmd.Flags().StringP("notes", "n", "", "Replace notes")
	updateCmd.Flags().String("interview", "", "Interview date and time, YYYY-MM-DD HH:MM:SS")
	updateCmd.Flags().String("followup", "", "Follow-up date, YYYY-MM-DD")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(actionsCmd)
}
