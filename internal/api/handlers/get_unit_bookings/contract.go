package get_unit_bookings

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type BookingService interface {
	GetUnitBookings(ctx context.Context, userID int64, filter domain.UnitBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
