package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no application matches the requested ID.
var ErrNotFound = errors.New("application not found")

// ValidationError lists the input fields that failed validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid application: %s", strings.Join(e.Problems, "; "))
}
