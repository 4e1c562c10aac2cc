package model

import (
	"fmt"
	"strings"
)

// Status is the pipeline stage of an application. Values read from a store
// are kept verbatim even when they are not one of the known statuses.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusPhoneScreen        Status = "Phone Screen"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewed        Status = "Interviewed"
	StatusSecondInterview    Status = "Second Interview"
	StatusOfferReceived      Status = "Offer Received"
	StatusAccepted           Status = "Accepted"
	StatusRejected           Status = "Rejected"
	StatusWithdrawn          Status = "Withdrawn"
	StatusFollowupNeeded     Status = "Follow-up Needed"
)

var statuses = []Status{
	StatusApplied,
	StatusPhoneScreen,
	StatusInterviewScheduled,
	StatusInterviewed,
	StatusSecondInterview,
	StatusOfferReceived,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
	StatusFollowupNeeded,
}

var statusColors = map[Status]string{
	StatusApplied:            "#FFB84D",
	StatusPhoneScreen:        "#4DA6FF",
	StatusInterviewScheduled: "#6B8EFF",
	StatusInterviewed:        "#9D7EFF",
	StatusSecondInterview:    "#B066FF",
	StatusOfferReceived:      "#66FF99",
	StatusAccepted:           "#00CC66",
	StatusRejected:           "#FF6B6B",
	StatusWithdrawn:          "#999999",
	StatusFollowupNeeded:     "#FFD93D",
}

// Statuses returns every known status in pipeline order.
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

// ParseStatus matches user input against the known statuses, ignoring case
// and surrounding space.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range statuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func (s Status) Known() bool {
	_, ok := statusColors[s]
	return ok
}

// Closed reports whether the application has reached a terminal state.
func (s Status) Closed() bool {
	return s == StatusRejected || s == StatusAccepted || s == StatusWithdrawn
}

// Color returns the display colour for the status as a hex string.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#CCCCCC"
}

func (s Status) String() string { return string(s) }
