package finish_booking

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// FinishedBookingResponse HTTP response model
type FinishedBookingResponse struct {
	ID              int64  `json:"id"`
	UnitID          int64  `json:"unitId"`
	ReservationDate string `json:"reservationDate"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *FinishedBookingResponse {
	return &FinishedBookingResponse{
		ID:              booking.ID,
		UnitID:          booking.UnitID,
		ReservationDate: booking.ReservationDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		Status:          string(booking.Status),
		UpdatedAt:       booking.UpdatedAt.Format(time.RFC3339),
	}
}
