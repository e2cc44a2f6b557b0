package domain

import (
	"time"

	"github.com/BookABite/reservation-service/pkg/types"
)

// BookingStatus represents the status of a table reservation
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusFinished  BookingStatus = "finished"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents a table reservation for a unit (restaurant location)
type Booking struct {
	ID              int64
	UnitID          int64
	GroupID         int64
	ReservationDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	AmountOfPeople  int
	Status          BookingStatus

	// Customer contact data, denormalized into the booking record
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Observation   *string

	CancellationReason *string
	CanceledAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the end of the reservation interval (start + duration).
// The interval is half-open: [StartTime, EndTime).
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsConfirmed returns true if the booking occupies its slot.
// Only confirmed bookings participate in conflict detection;
// finished and canceled bookings free the table.
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCanceled returns true if the booking can transition to canceled.
// Status transitions are one-way: confirmed -> finished, confirmed -> canceled.
func (b *Booking) CanBeCanceled() bool {
	return b.Status == StatusConfirmed
}

// CanBeFinished returns true if the booking can transition to finished
func (b *Booking) CanBeFinished() bool {
	return b.Status == StatusConfirmed
}

// UnitBookingsFilter фильтр для получения бронирований юнита
type UnitBookingsFilter struct {
	UnitID          int64          // Обязательный параметр
	Date            *time.Time     // Конкретная дата (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
