package tracker

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies "now" for day counts, success scores, Last Updated stamps
// and export names.
type Clock interface {
	Now() time.Time
}

// RealClock reads the local system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator issues the request IDs attached to calendar events.
type IDGenerator interface {
	New() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
