package get_unit_bookings

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// BookingItem элемент календаря бронирований юнита
type BookingItem struct {
	ID              int64   `json:"id"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	AmountOfPeople  int     `json:"amountOfPeople"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	Observation     *string `json:"observation,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// UnitBookingsResponse HTTP response model
type UnitBookingsResponse struct {
	UnitID   int64         `json:"unitId"`
	Bookings []BookingItem `json:"bookings"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(unitID int64, list []*domain.Booking) (*UnitBookingsResponse, error) {
	items := make([]BookingItem, 0, len(list))
	for _, booking := range list {
		endTime, err := booking.EndTime()
		if err != nil {
			return nil, err
		}

		items = append(items, BookingItem{
			ID:              booking.ID,
			ReservationDate: booking.ReservationDate.Format(domain.DateFormat),
			StartTime:       booking.StartTime.String(),
			EndTime:         endTime.String(),
			DurationMinutes: booking.DurationMinutes,
			AmountOfPeople:  booking.AmountOfPeople,
			Status:          string(booking.Status),
			CustomerName:    booking.CustomerName,
			CustomerPhone:   booking.CustomerPhone,
			Observation:     booking.Observation,
			CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		})
	}

	return &UnitBookingsResponse{
		UnitID:   unitID,
		Bookings: items,
	}, nil
}
