package domain

import (
	"fmt"
	"time"
)

// displayOrder is the weekday order used for human-readable summaries,
// Monday first.
var displayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var shortDayNames = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// SummarizeWeek collapses identical consecutive weekday schedules into
// display ranges, e.g. ["Mon-Fri: 09:00-18:00", "Sat: 09:00-13:00",
// "Sun: closed"]. Purely presentational; availability computation never
// consults it. Missing rules are skipped.
func SummarizeWeek(schedule WeekSchedule) []string {
	type segment struct {
		first, last time.Weekday
		hours       string
	}

	var segments []segment
	for _, day := range displayOrder {
		rule, ok := schedule.RuleFor(day)
		if !ok {
			continue
		}

		hours := "closed"
		if !rule.IsClosed {
			hours = fmt.Sprintf("%s-%s", rule.OpeningTime, rule.ClosingTime)
		}

		if len(segments) > 0 && segments[len(segments)-1].hours == hours {
			segments[len(segments)-1].last = day
			continue
		}
		segments = append(segments, segment{first: day, last: day, hours: hours})
	}

	result := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.first == seg.last {
			result = append(result, fmt.Sprintf("%s: %s", shortDayNames[seg.first], seg.hours))
		} else {
			result = append(result, fmt.Sprintf("%s-%s: %s", shortDayNames[seg.first], shortDayNames[seg.last], seg.hours))
		}
	}

	return result
}
