package get_available_slots

import (
	"fmt"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/pkg/types"
)

// generateTimeSlots строит сетку кандидатов начала бронирования для одного дня.
// Сетка идет от времени открытия с шагом granularityMinutes; кандидат попадает
// в сетку, только если интервал [t, t+duration) целиком лежит внутри рабочих
// часов. Для закрытого дня возвращается пустой список.
func generateTimeSlots(rule domain.WorkingHourRule, durationMinutes, granularityMinutes int) ([]types.TimeString, error) {
	if rule.IsClosed {
		return []types.TimeString{}, nil
	}

	opening, err := rule.OpeningTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening time: %v", ErrInternal, err)
	}

	closing, err := rule.ClosingTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closing time: %v", ErrInternal, err)
	}

	slots := make([]types.TimeString, 0)
	for t := opening; t+durationMinutes <= closing; t += granularityMinutes {
		slot, err := types.FromMinutes(t)
		if err != nil {
			return nil, fmt.Errorf("%w: slot out of range: %v", ErrInternal, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// filterPastSlots убирает слоты, нарушающие минимальное время предзаказа.
// Применяется только когда запрошенная дата совпадает с текущей.
func filterPastSlots(slots []types.TimeString, date, now time.Time, minNoticeMinutes int) []types.TimeString {
	if !sameDay(date, now) {
		return slots
	}

	earliest := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	cutoff := types.NewTimeString(earliest)

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBefore(cutoff) {
			continue
		}
		filtered = append(filtered, slot)
	}

	return filtered
}

// filterBlockedSlots убирает слоты, интервал которых пересекается хотя бы с
// одним блокирующим интервалом. Интервалы полуоткрытые, касание границ
// пересечением не считается.
func filterBlockedSlots(slots []types.TimeString, date time.Time, durationMinutes int, intervals []*domain.BlockedInterval) ([]types.TimeString, error) {
	if len(intervals) == 0 {
		return slots, nil
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.OnDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		end := start.Add(time.Duration(durationMinutes) * time.Minute)

		blocked := false
		for _, interval := range intervals {
			if interval.Overlaps(start, end) {
				blocked = true
				break
			}
		}
		if !blocked {
			filtered = append(filtered, slot)
		}
	}

	return filtered, nil
}

// filterConflictingSlots убирает слоты, пересекающиеся с подтвержденными
// бронированиями. Для полуоткрытых интервалов [a, b) и [c, d) пересечение
// есть тогда и только тогда, когда a < d && c < b.
func filterConflictingSlots(slots []types.TimeString, durationMinutes int, bookings []*domain.Booking) ([]types.TimeString, error) {
	if len(bookings) == 0 {
		return slots, nil
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		slotEnd, err := slot.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		conflict := false
		for _, booking := range bookings {
			if !booking.IsConfirmed() {
				continue
			}

			bookingEnd, err := booking.EndTime()
			if err != nil {
				return nil, fmt.Errorf("%w: booking_id=%d: %v", ErrInternal, booking.ID, err)
			}

			if slot.IsBefore(bookingEnd) && booking.StartTime.IsBefore(slotEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			filtered = append(filtered, slot)
		}
	}

	return filtered, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
