package dashboard

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/model"
	"jobtrack/internal/tracker"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func sampleApps() []*model.Application {
	apps := []*model.Application{
		{ID: "APP001", Company: "Acme", JobTitle: "SRE", ApplicationDate: "2023-12-20", Status: model.StatusApplied, FollowupDate: "2024-01-14"},
		{ID: "APP002", Company: "Globex", JobTitle: "Backend", ApplicationDate: "2024-01-10", Status: model.StatusInterviewScheduled, InterviewDate: "2024-01-17 10:00:00"},
		{ID: "APP003", Company: "Initech", JobTitle: "Analyst", ApplicationDate: "2024-01-02", Status: model.StatusRejected},
		{ID: "APP004", Company: "Umbrella", JobTitle: "Chemist", ApplicationDate: "2024-01-03", Status: model.Status("Ghosted")},
	}
	tracker.RefreshAll(apps, testNow)
	return apps
}

func snapshot(apps []*model.Application) *tracker.Snapshot {
	return &tracker.Snapshot{
		GeneratedAt:  testNow,
		Applications: apps,
		Report:       tracker.Analyze(apps, testNow),
		Actions:      tracker.SelectActions(apps, testNow),
	}
}

func TestDashboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 120).Dashboard(snapshot(sampleApps())))
	out := buf.String()

	for _, want := range []string{
		"Job Application Tracker",
		"2024-01-15 10:30:00",
		"Total", "Interview Rate", "25.0%",
		"Status Breakdown", "Interview Scheduled", "Ghosted",
		"Action Items", "Follow up with Acme", "Upcoming interview at Globex", "Check status of Acme application",
		"Top Companies", "1. Globex",
		"Applications", "APP001", "APP004", "Umbrella",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "buffer output should be plain text")
}

func TestDashboard_StatusOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 120).Dashboard(snapshot(sampleApps())))
	out := buf.String()

	applied := strings.Index(out, "Applied ")
	scheduled := strings.Index(out, "Interview Scheduled ")
	rejected := strings.Index(out, "Rejected ")
	ghosted := strings.Index(out, "Ghosted ")
	require.True(t, applied >= 0 && scheduled >= 0 && rejected >= 0 && ghosted >= 0)
	assert.Less(t, applied, scheduled)
	assert.Less(t, scheduled, rejected)
	assert.Less(t, rejected, ghosted)
}

func TestDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 0).Dashboard(snapshot(nil)))

	assert.Contains(t, buf.String(), "No applications tracked yet")
	assert.NotContains(t, buf.String(), "Status Breakdown")
}

func TestDashboard_NoActions(t *testing.T) {
	apps := []*model.Application{
		{ID: "APP001", Company: "Acme", JobTitle: "SRE", ApplicationDate: "2024-01-14", Status: model.StatusPhoneScreen},
	}
	tracker.RefreshAll(apps, testNow)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, 100).Dashboard(snapshot(apps)))
	assert.Contains(t, buf.String(), "Nothing needs attention right now.")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, 100).Table(sampleApps()))
	out := buf.String()

	for _, want := range []string{"ID", "Company", "Status", "APP002", "Globex", "Interview Scheduled"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, New(&buf, 100).Table(nil))
	assert.Contains(t, buf.String(), "No applications tracked yet.")
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 80, TerminalWidth(f))
}

func TestNew_ClampsWidth(t *testing.T) {
	assert.Equal(t, defaultWidth, New(&bytes.Buffer{}, 0).width)
	assert.Equal(t, minWidth, New(&bytes.Buffer{}, 10).width)
	assert.Equal(t, 200, New(&bytes.Buffer{}, 200).width)
}
