package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/pkg/ptr"
	"github.com/BookABite/reservation-service/pkg/types"
)

// validateRequest проверяет входные данные без обращения к хранилищу.
// Нарушения границ политики дают отклонения с машиночитаемыми кодами.
func (uc *UseCase) validateRequest(req *Request) error {
	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unit_id must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}

	if req.Observation != nil && len(*req.Observation) > domain.MaxObservationLength {
		return fmt.Errorf("%w: observation exceeds %d characters", ErrInvalidInput, domain.MaxObservationLength)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}

	if req.AmountOfPeople < domain.MinPartySize || req.AmountOfPeople > uc.policy.MaxPartySize {
		return fmt.Errorf("%w: amount_of_people %d outside [%d, %d]",
			ErrInvalidPartySize, req.AmountOfPeople, domain.MinPartySize, uc.policy.MaxPartySize)
	}

	if req.DurationMinutes < uc.policy.MinDurationMinutes || req.DurationMinutes > uc.policy.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d outside [%d, %d]",
			ErrInvalidDuration, req.DurationMinutes, uc.policy.MinDurationMinutes, uc.policy.MaxDurationMinutes)
	}

	return uc.validateDateTime(req)
}

// validateDateTime проверяет, что начало бронирования не в прошлом и
// соблюдает минимальное время предзаказа
func (uc *UseCase) validateDateTime(req *Request) error {
	if req.ReservationDate.IsZero() {
		return fmt.Errorf("%w: reservation_date is required", ErrInvalidDate)
	}

	start, err := req.StartTime.OnDate(req.ReservationDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	earliest := uc.timeProvider.Now().Add(time.Duration(uc.policy.MinNoticeMinutes) * time.Minute)
	if start.Before(earliest) {
		return fmt.Errorf("%w: booking must start at least %d minutes from now",
			ErrInvalidDate, uc.policy.MinNoticeMinutes)
	}

	return nil
}

// validateAvailability проверяет рабочие часы, блокирующие интервалы и
// конфликты с подтвержденными бронированиями. Вызывается внутри
// сериализуемой транзакции вместе со вставкой.
func (uc *UseCase) validateAvailability(ctx context.Context, req *Request) error {
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	if err := uc.checkWorkingHours(ctx, req, endTime); err != nil {
		return err
	}

	if err := uc.checkBlockedIntervals(ctx, req); err != nil {
		return err
	}

	return uc.checkBookingConflicts(ctx, req, endTime)
}

// checkWorkingHours проверяет, что интервал [start, start+duration) целиком
// лежит в рабочих часах дня недели
func (uc *UseCase) checkWorkingHours(ctx context.Context, req *Request, endTime types.TimeString) error {
	week, err := uc.scheduleRepo.GetWeek(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			week = domain.DefaultWeekSchedule()
		} else {
			uc.log.Error("Failed to load schedule for unit_id=%d: %v", req.UnitID, err)
			return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}
	}

	rule, ok := week.RuleFor(req.ReservationDate.Weekday())
	if !ok {
		return fmt.Errorf("%w: no rule for %s", ErrInternal, req.ReservationDate.Weekday())
	}

	if rule.IsClosed {
		return fmt.Errorf("%w: unit closed on %s", ErrClosed, req.ReservationDate.Weekday())
	}

	// Граница закрытия исключительна: бронирование, заканчивающееся ровно
	// в момент закрытия, допустимо
	if req.StartTime.IsBefore(rule.OpeningTime) || rule.ClosingTime.IsBefore(endTime) {
		return fmt.Errorf("%w: interval %s-%s outside working hours %s-%s",
			ErrClosed, req.StartTime, endTime, rule.OpeningTime, rule.ClosingTime)
	}

	return nil
}

// checkBlockedIntervals проверяет пересечение с блокирующими интервалами
func (uc *UseCase) checkBlockedIntervals(ctx context.Context, req *Request) error {
	start, err := req.StartTime.OnDate(req.ReservationDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	intervals, err := uc.blockedRepo.ListOverlapping(ctx, req.UnitID, start, end)
	if err != nil {
		uc.log.Error("Failed to load blocked intervals for unit_id=%d: %v", req.UnitID, err)
		return fmt.Errorf("%w: failed to load blocked intervals: %v", ErrInternal, err)
	}

	for _, interval := range intervals {
		if interval.Overlaps(start, end) {
			return fmt.Errorf("%w: blocked interval %d (%s)", ErrBlocked, interval.ID, interval.Reason)
		}
	}

	return nil
}

// checkBookingConflicts проверяет пересечение с подтвержденными бронированиями.
// Внутри транзакции репозиторий блокирует выбранные строки через FOR UPDATE.
func (uc *UseCase) checkBookingConflicts(ctx context.Context, req *Request, endTime types.TimeString) error {
	bookings, err := uc.bookingRepo.GetByUnitWithFilter(ctx, domain.UnitBookingsFilter{
		UnitID: req.UnitID,
		Date:   &req.ReservationDate,
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		uc.log.Error("Failed to load bookings for unit_id=%d: %v", req.UnitID, err)
		return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			return fmt.Errorf("%w: booking_id=%d: %v", ErrInternal, booking.ID, err)
		}

		// Полуоткрытые интервалы: касание границ конфликтом не считается
		if req.StartTime.IsBefore(bookingEnd) && booking.StartTime.IsBefore(endTime) {
			return fmt.Errorf("%w: overlaps booking %d (%s-%s)",
				ErrConflict, booking.ID, booking.StartTime, bookingEnd)
		}
	}

	return nil
}
