package get_booking

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UnitID             int64   `json:"unitId"`
	GroupID            int64   `json:"groupId"`
	ReservationDate    string  `json:"reservationDate"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	AmountOfPeople     int     `json:"amountOfPeople"`
	Status             string  `json:"status"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      *string `json:"customerEmail,omitempty"`
	Observation        *string `json:"observation,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CanceledAt         *string `json:"canceledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(booking *domain.Booking) (*BookingResponse, error) {
	endTime, err := booking.EndTime()
	if err != nil {
		return nil, err
	}

	resp := &BookingResponse{
		ID:                 booking.ID,
		UnitID:             booking.UnitID,
		GroupID:            booking.GroupID,
		ReservationDate:    booking.ReservationDate.Format(domain.DateFormat),
		StartTime:          booking.StartTime.String(),
		EndTime:            endTime.String(),
		DurationMinutes:    booking.DurationMinutes,
		AmountOfPeople:     booking.AmountOfPeople,
		Status:             string(booking.Status),
		CustomerName:       booking.CustomerName,
		CustomerPhone:      booking.CustomerPhone,
		CustomerEmail:      booking.CustomerEmail,
		Observation:        booking.Observation,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          booking.UpdatedAt.Format(time.RFC3339),
	}

	if booking.CanceledAt != nil {
		canceledAt := booking.CanceledAt.Format(time.RFC3339)
		resp.CanceledAt = &canceledAt
	}

	return resp, nil
}
