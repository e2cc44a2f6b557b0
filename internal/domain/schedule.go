package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/BookABite/reservation-service/pkg/types"
)

var (
	// ErrIncompleteSchedule is returned when a schedule does not contain exactly one rule per weekday
	ErrIncompleteSchedule = errors.New("schedule must contain exactly one rule per day of week")

	// ErrInvalidWorkingHours is returned when an open-day rule has opening_time >= closing_time
	ErrInvalidWorkingHours = errors.New("opening time must be before closing time")
)

// WorkingHourRule describes the recurring open hours of a unit on one day of the week.
// DayOfWeek follows time.Weekday numbering: 0 = Sunday.
type WorkingHourRule struct {
	DayOfWeek   time.Weekday
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	IsClosed    bool
}

// Validate checks the single-rule invariant: an open day needs a
// well-formed half-open window [opening, closing).
func (r WorkingHourRule) Validate() error {
	if r.DayOfWeek < time.Sunday || r.DayOfWeek > time.Saturday {
		return fmt.Errorf("%w: day of week %d", ErrIncompleteSchedule, r.DayOfWeek)
	}
	if r.IsClosed {
		return nil
	}
	if err := r.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidWorkingHours, r.DayOfWeek, err)
	}
	if err := r.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidWorkingHours, r.DayOfWeek, err)
	}
	if !r.OpeningTime.IsBefore(r.ClosingTime) {
		return fmt.Errorf("%w: %s: %s >= %s", ErrInvalidWorkingHours, r.DayOfWeek, r.OpeningTime, r.ClosingTime)
	}
	return nil
}

// IsOpenAt returns true if the unit accepts a start time t on this day.
// The closing boundary is exclusive: a unit closing at 18:00 is not open AT 18:00.
func (r WorkingHourRule) IsOpenAt(t types.TimeString) bool {
	if r.IsClosed {
		return false
	}
	return !t.IsBefore(r.OpeningTime) && t.IsBefore(r.ClosingTime)
}

// WeekSchedule is the full recurring schedule of a unit: one rule per weekday.
// It is replaced wholesale on settings updates, never patched per day.
type WeekSchedule []WorkingHourRule

// Validate checks the seven-rule invariant and every individual rule
func (ws WeekSchedule) Validate() error {
	if len(ws) != 7 {
		return fmt.Errorf("%w: got %d rules", ErrIncompleteSchedule, len(ws))
	}

	var seen [7]bool
	for _, rule := range ws {
		if rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
			return fmt.Errorf("%w: day of week %d", ErrIncompleteSchedule, rule.DayOfWeek)
		}
		if seen[rule.DayOfWeek] {
			return fmt.Errorf("%w: duplicate rule for %s", ErrIncompleteSchedule, rule.DayOfWeek)
		}
		seen[rule.DayOfWeek] = true

		if err := rule.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RuleFor returns the rule for the given weekday
func (ws WeekSchedule) RuleFor(day time.Weekday) (WorkingHourRule, bool) {
	for _, rule := range ws {
		if rule.DayOfWeek == day {
			return rule, true
		}
	}
	return WorkingHourRule{}, false
}

// DefaultWeekSchedule returns the fallback schedule used when a unit has no
// stored rules: open 09:00-18:00 every day, closed on Sunday.
func DefaultWeekSchedule() WeekSchedule {
	schedule := make(WeekSchedule, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		schedule = append(schedule, WorkingHourRule{
			DayOfWeek:   day,
			OpeningTime: DefaultOpeningTime,
			ClosingTime: DefaultClosingTime,
			IsClosed:    day == time.Sunday,
		})
	}
	return schedule
}
