package create_booking

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	createBooking "github.com/BookABite/reservation-service/internal/usecase/create_booking"
	"github.com/BookABite/reservation-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UnitID          int64   `json:"unitId"`
	ReservationDate string  `json:"reservationDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`       // "19:00"
	DurationMinutes int     `json:"durationMinutes"`
	AmountOfPeople  int     `json:"amountOfPeople"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Observation     *string `json:"observation,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	UnitID          int64  `json:"unitId"`
	GroupID         int64  `json:"groupId"`
	ReservationDate string `json:"reservationDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AmountOfPeople  int    `json:"amountOfPeople"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UnitID:          r.UnitID,
		ReservationDate: reservationDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		AmountOfPeople:  r.AmountOfPeople,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		Observation:     r.Observation,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.BookingID,
		UnitID:          resp.UnitID,
		GroupID:         resp.GroupID,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		AmountOfPeople:  resp.AmountOfPeople,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
