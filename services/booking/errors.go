package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned when a booking session does not exist or its
// TTL has elapsed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrVenueNotFound is returned when the requested venue is not in the catalog.
var ErrVenueNotFound = errors.New("venue not found")

// StepValidationError reports a blocked wizard transition. Missing lists the
// unmet requirements of the step being validated.
type StepValidationError struct {
	Step    int
	Missing []string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d is incomplete: %s", e.Step, strings.Join(e.Missing, ", "))
}
