package bookings

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetByUnitWithFilter(ctx context.Context, filter domain.UnitBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, bookingID int64, reason string) error
}

// GroupServiceClient интерфейс клиента для GroupService
type GroupServiceClient interface {
	GetUnit(ctx context.Context, unitID int64) (*groupservice.Unit, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	NotifyBookingCanceled(ctx context.Context, event *notifier.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
