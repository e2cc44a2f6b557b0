package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/BookABite/reservation-service/internal/config"
	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

// UseCase для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	blockedRepo    BlockedIntervalRepository
	groupService   GroupServiceClient
	notifierClient NotifierClient
	txManager      TxManager
	timeProvider   TimeProvider
	policy         config.BookingPolicy
	log            Logger
}

// NewUseCase создает новый usecase для создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blockedRepo BlockedIntervalRepository,
	groupService GroupServiceClient,
	notifierClient NotifierClient,
	txManager TxManager,
	timeProvider TimeProvider,
	policy config.BookingPolicy,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		blockedRepo:    blockedRepo,
		groupService:   groupService,
		notifierClient: notifierClient,
		txManager:      txManager,
		timeProvider:   timeProvider,
		policy:         policy,
		log:            log,
	}
}

// Execute создает бронирование.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: из двух конкурентных запросов на пересекающиеся интервалы
// успешным будет ровно один, второй получит отклонение CONFLICT.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	unit, err := uc.groupService.GetUnit(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, groupservice.ErrUnitNotFound) {
			return nil, fmt.Errorf("%w: unit_id=%d", ErrUnitNotFound, req.UnitID)
		}
		uc.log.Error("GroupService check failed for unit_id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: group service unavailable: %v", ErrInternal, err)
	}

	booking := uc.buildBooking(req, unit)

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.validateAvailability(txCtx, req); err != nil {
			return err
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}
		booking = created
		return nil
	})
	if txErr != nil {
		if reason := RejectionReasonFor(txErr); reason != "" {
			uc.log.Info("Booking rejected: unit_id=%d, date=%s, start=%s, reason=%s",
				req.UnitID, req.ReservationDate.Format(domain.DateFormat), req.StartTime, reason)
			return nil, txErr
		}
		if errors.Is(txErr, ErrInvalidInput) || errors.Is(txErr, ErrInvalidDate) {
			return nil, txErr
		}
		uc.log.Error("Failed to create booking for unit_id=%d: %v", req.UnitID, txErr)
		return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	uc.log.Info("Booking created: booking_id=%d, unit_id=%d, date=%s, start=%s, duration=%d",
		booking.ID, booking.UnitID, booking.ReservationDate.Format(domain.DateFormat),
		booking.StartTime, booking.DurationMinutes)

	// Уведомление информационное, его недоступность бронирование не откатывает
	uc.notifyConfirmed(ctx, booking)

	return uc.buildResponse(booking)
}

func (uc *UseCase) buildBooking(req *Request, unit *groupservice.Unit) *domain.Booking {
	return &domain.Booking{
		UnitID:          req.UnitID,
		GroupID:         unit.GroupID,
		ReservationDate: req.ReservationDate,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		AmountOfPeople:  req.AmountOfPeople,
		Status:          domain.StatusConfirmed,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Observation:     req.Observation,
	}
}

func (uc *UseCase) notifyConfirmed(ctx context.Context, booking *domain.Booking) {
	event := &notifier.BookingEvent{
		BookingID:       booking.ID,
		UnitID:          booking.UnitID,
		GroupID:         booking.GroupID,
		ReservationDate: booking.ReservationDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		DurationMinutes: booking.DurationMinutes,
		AmountOfPeople:  booking.AmountOfPeople,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		Status:          string(booking.Status),
	}

	if err := uc.notifierClient.NotifyBookingConfirmed(ctx, event); err != nil {
		uc.log.Warn("Confirmation notification failed for booking_id=%d: %v", booking.ID, err)
	}
}

func (uc *UseCase) buildResponse(booking *domain.Booking) (*Response, error) {
	endTime, err := booking.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		BookingID:       booking.ID,
		UnitID:          booking.UnitID,
		GroupID:         booking.GroupID,
		ReservationDate: booking.ReservationDate,
		StartTime:       booking.StartTime,
		EndTime:         endTime,
		DurationMinutes: booking.DurationMinutes,
		AmountOfPeople:  booking.AmountOfPeople,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}, nil
}
