// Package dashboard renders a one-shot terminal view of the tracker snapshot.
package dashboard

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

const (
	defaultWidth = 80
	minWidth     = 40
	barWidth     = 30
	labelWidth   = 20
)

// TerminalWidth returns the width of the terminal on f, or 80 when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

type styles struct {
	header  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
	urgent  lipgloss.Style
	card    lipgloss.Style
	border  lipgloss.Style
	status  func(model.Status) lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1),
		section: r.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1),
		label: r.NewStyle().Foreground(lipgloss.Color("45")),
		value: r.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
		urgent: r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("238")),
		status: func(s model.Status) lipgloss.Style {
			return r.NewStyle().Foreground(lipgloss.Color(s.Color()))
		},
	}
}

// Renderer writes dashboard views to w.
type Renderer struct {
	w     io.Writer
	width int
	st    styles
}

// New creates a Renderer for w. Colour support is detected from w, so output
// to a file or buffer is plain text. width <= 0 means 80 columns.
func New(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	width = max(width, minWidth)
	return &Renderer{w: w, width: width, st: newStyles(lipgloss.NewRenderer(w))}
}

// Dashboard renders the full view: metrics, status breakdown, action items,
// top companies and the application table.
func (d *Renderer) Dashboard(snap *tracker.Snapshot) error {
	var b strings.Builder

	b.WriteString(d.st.header.Render("Job Application Tracker"))
	b.WriteString(" ")
	b.WriteString(d.st.dim.Render(snap.GeneratedAt.Format(model.DateTimeLayout)))
	b.WriteString("\n")

	r := snap.Report
	if r == nil || r.NoData {
		b.WriteString("\n")
		b.WriteString(d.st.dim.Render("No applications tracked yet. Add one with `jobtrack add`."))
		b.WriteString("\n")
		_, err := io.WriteString(d.w, b.String())
		return err
	}

	b.WriteString(d.metrics(r))
	b.WriteString("\n")
	b.WriteString(d.st.section.Render("Status Breakdown"))
	b.WriteString("\n")
	b.WriteString(d.statusBars(r.StatusBreakdown))

	b.WriteString(d.st.section.Render("Action Items"))
	b.WriteString("\n")
	b.WriteString(d.actions(snap.Actions))

	if len(r.TopCompanies) > 0 {
		b.WriteString(d.st.section.Render("Top Companies"))
		b.WriteString("\n")
		for i, c := range r.TopCompanies {
			fmt.Fprintf(&b, "%d. %s %s\n", i+1, c.Company, d.st.dim.Render(fmt.Sprintf("(avg score %.1f)", c.AvgScore)))
		}
	}

	b.WriteString(d.st.section.Render("Applications"))
	b.WriteString("\n")
	b.WriteString(d.table(snap.Applications))
	b.WriteString("\n")

	_, err := io.WriteString(d.w, b.String())
	return err
}

// Table renders only the application table.
func (d *Renderer) Table(apps []*model.Application) error {
	if len(apps) == 0 {
		_, err := fmt.Fprintln(d.w, d.st.dim.Render("No applications tracked yet."))
		return err
	}
	_, err := fmt.Fprintln(d.w, d.table(apps))
	return err
}

func (d *Renderer) metrics(r *tracker.Report) string {
	cards := []struct{ label, value string }{
		{"Total", strconv.Itoa(r.Total)},
		{"Active", strconv.Itoa(r.Active)},
		{"Interview Rate", fmt.Sprintf("%.1f%%", r.Metrics.InterviewRate)},
		{"Offer Rate", fmt.Sprintf("%.1f%%", r.Metrics.OfferRate)},
		{"Avg Days", fmt.Sprintf("%.1f", r.AverageDaysSinceApplied)},
	}

	blocks := make([]string, 0, len(cards))
	used := 0
	for _, c := range cards {
		block := d.st.card.Render(d.st.label.Render(c.label) + "\n" + d.st.value.Render(c.value))
		used += lipgloss.Width(block)
		if used > d.width && len(blocks) > 0 {
			break
		}
		blocks = append(blocks, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// statusBars draws one bar per status, known statuses in pipeline order
// followed by any others alphabetically.
func (d *Renderer) statusBars(breakdown map[model.Status]int) string {
	order := model.Statuses()
	var extra []model.Status
	for s := range breakdown {
		if !s.Known() {
			extra = append(extra, s)
		}
	}
	slices.Sort(extra)
	order = append(order, extra...)

	most := 0
	for _, n := range breakdown {
		most = max(most, n)
	}

	var b strings.Builder
	for _, s := range order {
		n := breakdown[s]
		if n == 0 {
			continue
		}
		length := max(1, n*barWidth/most)
		label := fmt.Sprintf("%-*s", labelWidth, s)
		fmt.Fprintf(&b, "%s %s %d\n", label, d.st.status(s).Render(strings.Repeat("█", length)), n)
	}
	return b.String()
}

func (d *Renderer) actions(items *tracker.ActionItems) string {
	if items == nil || items.Count() == 0 {
		return d.st.dim.Render("Nothing needs attention right now.") + "\n"
	}

	var b strings.Builder
	for _, item := range items.Items() {
		marker := "-"
		title := item.Title
		if item.Urgent {
			marker = d.st.urgent.Render("!")
			title = d.st.urgent.Render(title)
		}
		fmt.Fprintf(&b, "%s %s\n  %s\n", marker, title, d.st.dim.Render(item.Description))
	}
	return b.String()
}

func (d *Renderer) table(apps []*model.Application) string {
	rows := make([][]string, len(apps))
	for i, app := range apps {
		rows[i] = []string{
			app.ID,
			app.Company,
			app.JobTitle,
			app.Status.String(),
			strconv.Itoa(app.DaysSinceApplied),
			strconv.Itoa(app.SuccessScore),
			app.FollowupDate,
		}
	}

	const statusCol = 3
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(d.st.border).
		Headers("ID", "Company", "Title", "Status", "Days", "Score", "Follow-up").
		Rows(rows...).
		Width(d.width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return d.st.label.Bold(true).Padding(0, 1)
			}
			if col == statusCol && row >= 0 && row < len(apps) {
				return d.st.status(apps[row].Status).Padding(0, 1)
			}
			return d.st.value.UnsetBold().Padding(0, 1)
		})
	return t.String()
}
