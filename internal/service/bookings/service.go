package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BookABite/reservation-service/internal/domain"
	storage "github.com/BookABite/reservation-service/internal/infra/storage/booking"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

// Service управление жизненным циклом бронирований: просмотр, отмена,
// завершение. Создание вынесено в отдельный usecase из-за транзакционной
// проверки доступности.
type Service struct {
	bookingRepo    BookingRepository
	groupService   GroupServiceClient
	notifierClient NotifierClient
	log            Logger
}

// NewService создает новый сервис бронирований
func NewService(
	bookingRepo BookingRepository,
	groupService GroupServiceClient,
	notifierClient NotifierClient,
	log Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		groupService:   groupService,
		notifierClient: notifierClient,
		log:            log,
	}
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking_id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, bookingID)
		}
		s.log.Error("Failed to get booking booking_id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return booking, nil
}

// GetUnitBookings возвращает бронирования юнита для календаря персонала.
// Доступ только менеджерам юнита.
func (s *Service) GetUnitBookings(ctx context.Context, userID int64, filter domain.UnitBookingsFilter) ([]*domain.Booking, error) {
	if filter.UnitID <= 0 {
		return nil, fmt.Errorf("%w: unit_id must be positive", ErrInvalidInput)
	}

	if err := s.checkManagerAccess(ctx, filter.UnitID, userID); err != nil {
		return nil, err
	}

	result, err := s.bookingRepo.GetByUnitWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get bookings for unit_id=%d: %v", filter.UnitID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return result, nil
}

// Cancel отменяет подтвержденное бронирование.
// Переход одноразовый: отмененное бронирование освобождает слот и больше
// не участвует в расчете доступности.
func (s *Service) Cancel(ctx context.Context, bookingID, userID int64, reason string) (*domain.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.UnitID, userID); err != nil {
		return nil, err
	}

	if !booking.CanBeCanceled() {
		return nil, fmt.Errorf("%w: cannot cancel booking in status %s", ErrInvalidStatus, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		s.log.Error("Failed to cancel booking booking_id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("Booking canceled: booking_id=%d, unit_id=%d, by user_id=%d", bookingID, booking.UnitID, userID)

	booking.Status = domain.StatusCanceled
	booking.CancellationReason = &reason

	// Уведомление информационное, его сбой отмену не откатывает
	s.notifyCanceled(ctx, booking, reason)

	return booking, nil
}

// Finish помечает подтвержденное бронирование завершенным.
// Завершенные бронирования остаются в календаре персонала, но слот
// больше не занимают.
func (s *Service) Finish(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, booking.UnitID, userID); err != nil {
		return nil, err
	}

	if !booking.CanBeFinished() {
		return nil, fmt.Errorf("%w: cannot finish booking in status %s", ErrInvalidStatus, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusFinished); err != nil {
		s.log.Error("Failed to finish booking booking_id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("Booking finished: booking_id=%d, unit_id=%d, by user_id=%d", bookingID, booking.UnitID, userID)

	booking.Status = domain.StatusFinished
	return booking, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером юнита
func (s *Service) checkManagerAccess(ctx context.Context, unitID, userID int64) error {
	unit, err := s.groupService.GetUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, groupservice.ErrUnitNotFound) {
			return fmt.Errorf("%w: unit_id=%d", ErrUnitNotFound, unitID)
		}
		s.log.Error("GroupService check failed for unit_id=%d: %v", unitID, err)
		return fmt.Errorf("%w: group service unavailable: %v", ErrInternal, err)
	}

	if !unit.IsManager(userID) {
		return fmt.Errorf("%w: user_id=%d is not a manager of unit_id=%d", ErrAccessDenied, userID, unitID)
	}

	return nil
}

func (s *Service) notifyCanceled(ctx context.Context, booking *domain.Booking, reason string) {
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
		Status:          string(domain.StatusCanceled),
		Reason:          &reason,
	}

	if err := s.notifierClient.NotifyBookingCanceled(ctx, event); err != nil {
		s.log.Warn("Cancellation notification failed for booking_id=%d: %v", booking.ID, err)
	}
}
