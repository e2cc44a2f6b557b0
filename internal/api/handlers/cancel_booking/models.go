package cancel_booking

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CanceledBookingResponse HTTP response model
type CanceledBookingResponse struct {
	ID                 int64   `json:"id"`
	UnitID             int64   `json:"unitId"`
	ReservationDate    string  `json:"reservationDate"`
	StartTime          string  `json:"startTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) *CanceledBookingResponse {
	return &CanceledBookingResponse{
		ID:                 booking.ID,
		UnitID:             booking.UnitID,
		ReservationDate:    booking.ReservationDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime.String(),
		Status:             string(booking.Status),
		CancellationReason: booking.CancellationReason,
		UpdatedAt:          booking.UpdatedAt.Format(time.RFC3339),
	}
}
