package app

import (
	"errors"
	"testing"
	"time"
)

func TestNewOperation(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("EST", -5*3600))

	op := NewOperation("AddApplication", now)

	if op.Command != "AddApplication" {
		t.Errorf("Command = %q, want %q", op.Command, "AddApplication")
	}
	if op.ID != "20240115T153000Z" {
		t.Errorf("ID = %q, want UTC timestamp %q", op.ID, "20240115T153000Z")
	}
	if !op.StartedAt.Equal(now) {
		t.Errorf("StartedAt = %v, want %v", op.StartedAt, now)
	}
	if op.Failed() {
		t.Error("new operation should not be failed")
	}
}

func TestOperation_Fail(t *testing.T) {
	op := NewOperation("Export", time.Now())

	if err := op.Fail(nil); err != nil {
		t.Errorf("Fail(nil) = %v, want nil", err)
	}
	if op.Failed() {
		t.Error("Fail(nil) should not mark the operation failed")
	}

	first := errors.New("first")
	if got := op.Fail(first); got != first {
		t.Errorf("Fail() returned %v, want the same error", got)
	}
	op.Fail(errors.New("second"))

	if !op.Failed() {
		t.Error("Failed() = false after Fail(err)")
	}
	if op.Err != first {
		t.Errorf("Err = %v, want first recorded error", op.Err)
	}
}
