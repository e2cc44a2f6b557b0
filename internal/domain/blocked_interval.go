package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidInterval is returned when start_datetime >= end_datetime
	ErrInvalidInterval = errors.New("interval start must be before interval end")

	// ErrEmptyReason is returned when a blocked interval has a blank reason
	ErrEmptyReason = errors.New("blocked interval reason must not be empty")
)

// BlockedInterval is an explicit closure window overriding normal working
// hours (maintenance, holidays, private events). Membership in the set is
// tested by overlap, never by identity.
type BlockedInterval struct {
	ID       int64
	UnitID   int64
	StartsAt time.Time
	EndsAt   time.Time
	Reason   string

	CreatedAt time.Time
}

// Validate checks the interval invariants
func (b BlockedInterval) Validate() error {
	if !b.StartsAt.Before(b.EndsAt) {
		return ErrInvalidInterval
	}
	if strings.TrimSpace(b.Reason) == "" {
		return ErrEmptyReason
	}
	return nil
}

// Overlaps reports whether [start, end) intersects the blocked window.
// Half-open semantics: touching endpoints do not overlap.
func (b BlockedInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndsAt) && end.After(b.StartsAt)
}
