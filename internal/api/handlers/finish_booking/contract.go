package finish_booking

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type BookingService interface {
	Finish(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
