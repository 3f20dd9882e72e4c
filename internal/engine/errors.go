package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcunha/anvil/internal/models"
)

// Business-rule violations are expected outcomes: the façades branch on
// them and render structured error payloads. Only storage failures
// propagate as plain wrapped errors.
var (
	// ErrDuplicateLog marks an attempt to log or skip a lift that already
	// has an entry for the current (week, phase, cycle) triple.
	ErrDuplicateLog = errors.New("already logged this week")

	// ErrMissingConfig marks an operation that needs a template or
	// training max that has not been set.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrUnknownTemplate marks a template identifier absent from the catalog.
	ErrUnknownTemplate = errors.New("unknown template")
)

// DuplicateLogError reports which triple was already recorded.
type DuplicateLogError struct {
	Lift models.Lift
	Week int
}

func (e *DuplicateLogError) Error() string {
	return fmt.Sprintf("%s is already logged for week %d; use skip_lift or reschedule if needed", e.Lift, e.Week)
}

func (e *DuplicateLogError) Unwrap() error { return ErrDuplicateLog }

// MissingConfigError names the lift and what it is missing.
type MissingConfigError struct {
	Lift    models.Lift
	Missing string // "template" or "training max"
	Hint    string
}

func (e *MissingConfigError) Error() string {
	msg := fmt.Sprintf("no %s set for %s", e.Missing, e.Lift)
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

func (e *MissingConfigError) Unwrap() error { return ErrMissingConfig }

// UnknownTemplateError enumerates the available identifiers to guide
// correction.
type UnknownTemplateError struct {
	Name      string
	Available []*models.Template
}

func (e *UnknownTemplateError) Error() string {
	names := make([]string, 0, len(e.Available))
	for _, t := range e.Available {
		names = append(names, fmt.Sprintf("%s (%s)", t.DisplayName, t.Name))
	}
	return fmt.Sprintf("unknown template %q, available: %s", e.Name, strings.Join(names, ", "))
}

func (e *UnknownTemplateError) Unwrap() error { return ErrUnknownTemplate }

// IsBusinessError reports whether err is one of the expected business-rule
// rejections rather than an infrastructure failure.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrDuplicateLog) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrUnknownTemplate)
}
