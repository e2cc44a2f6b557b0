package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BookABite/reservation-service/internal/domain"
	storage "github.com/BookABite/reservation-service/internal/infra/storage/booking"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	list          []*domain.Booking
	statusUpdates map[int64]domain.BookingStatus
	cancelReasons map[int64]string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		byID:          make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
		cancelReasons: make(map[int64]string),
	}
	for _, b := range bookings {
		repo.byID[b.ID] = b
		repo.list = append(repo.list, b)
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, bookingID int64) (*domain.Booking, error) {
	booking, ok := f.byID[bookingID]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUnitWithFilter(_ context.Context, filter domain.UnitBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.list {
		if b.UnitID == filter.UnitID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID int64, status domain.BookingStatus) error {
	f.statusUpdates[bookingID] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, bookingID int64, reason string) error {
	f.cancelReasons[bookingID] = reason
	return nil
}

type fakeGroupService struct {
	unit *groupservice.Unit
	err  error
}

func (f *fakeGroupService) GetUnit(_ context.Context, _ int64) (*groupservice.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unit, nil
}

type fakeNotifier struct {
	events []*notifier.BookingEvent
}

func (f *fakeNotifier) NotifyBookingCanceled(_ context.Context, event *notifier.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		UnitID:          1,
		GroupID:         10,
		ReservationDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "19:00",
		DurationMinutes: 90,
		AmountOfPeople:  4,
		Status:          domain.StatusConfirmed,
		CustomerName:    "Ana Souza",
		CustomerPhone:   "+5511999998888",
	}
}

func managedUnit() *groupservice.Unit {
	return &groupservice.Unit{ID: 1, GroupID: 10, ManagerIDs: []int64{100}}
}

func TestService_Cancel(t *testing.T) {
	t.Run("manager cancels confirmed booking", func(t *testing.T) {
		repo := newFakeBookingRepo(confirmedBooking())
		notifierClient := &fakeNotifier{}
		svc := NewService(repo, &fakeGroupService{unit: managedUnit()}, notifierClient, nopLogger{})

		booking, err := svc.Cancel(context.Background(), 1, 100, "клиент попросил перенести")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCanceled, booking.Status)
		assert.Equal(t, "клиент попросил перенести", repo.cancelReasons[1])
		require.Len(t, notifierClient.events, 1)
		assert.Equal(t, string(domain.StatusCanceled), notifierClient.events[0].Status)
	})

	t.Run("requires non-empty reason", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(confirmedBooking()), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), 1, 100, "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(confirmedBooking()), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), 1, 999, "причина")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("canceled booking cannot be canceled again", func(t *testing.T) {
		booking := confirmedBooking()
		booking.Status = domain.StatusCanceled
		svc := NewService(newFakeBookingRepo(booking), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), 1, 100, "причина")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.Cancel(context.Background(), 42, 100, "причина")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Finish(t *testing.T) {
	t.Run("manager finishes confirmed booking", func(t *testing.T) {
		repo := newFakeBookingRepo(confirmedBooking())
		svc := NewService(repo, &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		booking, err := svc.Finish(context.Background(), 1, 100)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusFinished, booking.Status)
		assert.Equal(t, domain.StatusFinished, repo.statusUpdates[1])
	})

	t.Run("finished booking cannot be finished again", func(t *testing.T) {
		booking := confirmedBooking()
		booking.Status = domain.StatusFinished
		svc := NewService(newFakeBookingRepo(booking), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.Finish(context.Background(), 1, 100)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_GetUnitBookings(t *testing.T) {
	t.Run("manager sees unit calendar", func(t *testing.T) {
		repo := newFakeBookingRepo(confirmedBooking())
		svc := NewService(repo, &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		list, err := svc.GetUnitBookings(context.Background(), 100, domain.UnitBookingsFilter{UnitID: 1})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(), &fakeGroupService{unit: managedUnit()}, &fakeNotifier{}, nopLogger{})

		_, err := svc.GetUnitBookings(context.Background(), 999, domain.UnitBookingsFilter{UnitID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unit not found", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(), &fakeGroupService{err: groupservice.ErrUnitNotFound}, &fakeNotifier{}, nopLogger{})

		_, err := svc.GetUnitBookings(context.Background(), 100, domain.UnitBookingsFilter{UnitID: 1})
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})
}
