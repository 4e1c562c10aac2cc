package main

import (
	"testing"

	"github.com/spf13/cobra"

	"jobtrack/internal/model"
)

func newUpdateFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "update"}
	cmd.Flags().StringArray("set", nil, "")
	for _, s := range shortcutColumns {
		cmd.Flags().String(s.flag, "", "")
	}
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cmd
}

func TestCollectUpdates(t *testing.T) {
	cmd := newUpdateFlags(t,
		"--set", "Salary Range=100k-120k",
		"--set", "Contact Person=Jane = Doe",
		"--status", "Interviewed",
		"--notes", "",
	)

	got, err := collectUpdates(cmd)
	if err != nil {
		t.Fatalf("collectUpdates() error = %v", err)
	}

	want := map[string]string{
		model.ColSalaryRange:   "100k-120k",
		model.ColContactPerson: "Jane = Doe",
		model.ColStatus:        "Interviewed",
		model.ColNotes:         "",
	}
	if len(got) != len(want) {
		t.Fatalf("collectUpdates() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestCollectUpdates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing equals", []string{"--set", "Status"}},
		{"empty column", []string{"--set", "=Applied"}},
		{"unknown column", []string{"--set", "Recruiter=Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := collectUpdates(newUpdateFlags(t, tt.args...)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
