package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekSchedule_Validate(t *testing.T) {
	t.Run("default schedule is valid", func(t *testing.T) {
		require.NoError(t, DefaultWeekSchedule().Validate())
	})

	t.Run("rejects incomplete week", func(t *testing.T) {
		week := DefaultWeekSchedule()[:6]
		assert.ErrorIs(t, week.Validate(), ErrIncompleteSchedule)
	})

	t.Run("rejects duplicate day", func(t *testing.T) {
		week := DefaultWeekSchedule()
		week[0].DayOfWeek = time.Monday
		assert.ErrorIs(t, week.Validate(), ErrIncompleteSchedule)
	})

	t.Run("rejects opening after closing", func(t *testing.T) {
		week := DefaultWeekSchedule()
		week[1].OpeningTime = "20:00"
		week[1].ClosingTime = "10:00"
		assert.ErrorIs(t, week.Validate(), ErrInvalidWorkingHours)
	})

	t.Run("closed day does not need hours", func(t *testing.T) {
		week := DefaultWeekSchedule()
		week[0].OpeningTime = ""
		week[0].ClosingTime = ""
		require.NoError(t, week.Validate())
	})
}

func TestWorkingHourRule_IsOpenAt(t *testing.T) {
	rule := WorkingHourRule{
		DayOfWeek:   time.Monday,
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}

	assert.True(t, rule.IsOpenAt("09:00"))
	assert.True(t, rule.IsOpenAt("17:59"))
	// Граница закрытия исключительна
	assert.False(t, rule.IsOpenAt("18:00"))
	assert.False(t, rule.IsOpenAt("08:59"))

	closed := WorkingHourRule{DayOfWeek: time.Sunday, IsClosed: true}
	assert.False(t, closed.IsOpenAt("12:00"))
}

func TestBooking_EndTime(t *testing.T) {
	booking := &Booking{StartTime: "19:00", DurationMinutes: 90}

	endTime, err := booking.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "20:30", endTime.String())
}

func TestBooking_StatusTransitions(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	assert.True(t, confirmed.CanBeCanceled())
	assert.True(t, confirmed.CanBeFinished())
	assert.True(t, confirmed.IsConfirmed())

	finished := &Booking{Status: StatusFinished}
	assert.False(t, finished.CanBeCanceled())
	assert.False(t, finished.CanBeFinished())
	assert.False(t, finished.IsConfirmed())

	canceled := &Booking{Status: StatusCanceled}
	assert.False(t, canceled.CanBeCanceled())
	assert.False(t, canceled.CanBeFinished())
}

func TestBlockedInterval_Overlaps(t *testing.T) {
	interval := BlockedInterval{
		StartsAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
	}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC)
	}

	assert.True(t, interval.Overlaps(at(13, 0), at(13, 30)))
	assert.True(t, interval.Overlaps(at(11, 0), at(12, 30)))
	assert.True(t, interval.Overlaps(at(13, 30), at(15, 0)))
	assert.True(t, interval.Overlaps(at(11, 0), at(15, 0)))

	// Полуоткрытые интервалы: касание границ пересечением не считается
	assert.False(t, interval.Overlaps(at(10, 0), at(12, 0)))
	assert.False(t, interval.Overlaps(at(14, 0), at(16, 0)))
}

func TestBlockedInterval_Validate(t *testing.T) {
	valid := BlockedInterval{
		StartsAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
		Reason:   "Manutenção",
	}
	require.NoError(t, valid.Validate())

	inverted := valid
	inverted.StartsAt, inverted.EndsAt = inverted.EndsAt, inverted.StartsAt
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidInterval)

	blank := valid
	blank.Reason = "   "
	assert.ErrorIs(t, blank.Validate(), ErrEmptyReason)
}

func TestSummarizeWeek(t *testing.T) {
	summary := SummarizeWeek(DefaultWeekSchedule())
	assert.Equal(t, []string{"Mon-Sat: 09:00-18:00", "Sun: closed"}, summary)

	week := DefaultWeekSchedule()
	for i := range week {
		if week[i].DayOfWeek == time.Saturday {
			week[i].OpeningTime = "10:00"
			week[i].ClosingTime = "14:00"
		}
	}
	summary = SummarizeWeek(week)
	assert.Equal(t, []string{"Mon-Fri: 09:00-18:00", "Sat: 10:00-14:00", "Sun: closed"}, summary)
}
