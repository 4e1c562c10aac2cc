package app

import "time"

// Operation tracks a single CLI invocation. Its ID tags every log line
// written while the command runs.
type Operation struct {
	ID        string
	Command   string
	StartedAt time.Time
	Err       error
}

// NewOperation creates an operation for command started at now.
func NewOperation(command string, now time.Time) *Operation {
	return &Operation{
		ID:        now.UTC().Format("20060102T150405Z"),
		Command:   command,
		StartedAt: now,
	}
}

// Fail records err as the operation's outcome and returns it unchanged.
// The first recorded error wins.
func (op *Operation) Fail(err error) error {
	if err != nil && op.Err == nil {
		op.Err = err
	}
	return err
}

// Failed returns true if an error has been recorded.
func (op *Operation) Failed() bool {
	return op.Err != nil
}
