package create_booking

import (
	"errors"

	"github.com/BookABite/reservation-service/internal/domain"
)

var (
	// ErrUnitNotFound возвращается, когда юнит не найден
	ErrUnitNotFound = errors.New("create_booking: unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid reservation date")

	// ErrClosed возвращается, когда интервал выходит за рабочие часы дня
	ErrClosed = errors.New("create_booking: unit is closed at requested time")

	// ErrBlocked возвращается при пересечении с блокирующим интервалом
	ErrBlocked = errors.New("create_booking: requested time is blocked")

	// ErrConflict возвращается при пересечении с подтвержденным бронированием
	ErrConflict = errors.New("create_booking: time slot already booked")

	// ErrInvalidPartySize возвращается, когда число гостей вне границ политики
	ErrInvalidPartySize = errors.New("create_booking: invalid party size")

	// ErrInvalidDuration возвращается, когда длительность вне границ политики
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionReasonFor возвращает машиночитаемый код отклонения для ошибки
// валидации бронирования. Для ошибок, не являющихся отклонением по правилам
// доступности, возвращается пустая строка.
func RejectionReasonFor(err error) domain.RejectionReason {
	switch {
	case errors.Is(err, ErrClosed):
		return domain.ReasonClosed
	case errors.Is(err, ErrBlocked):
		return domain.ReasonBlocked
	case errors.Is(err, ErrConflict):
		return domain.ReasonConflict
	case errors.Is(err, ErrInvalidPartySize):
		return domain.ReasonInvalidPartySize
	case errors.Is(err, ErrInvalidDuration):
		return domain.ReasonInvalidDuration
	default:
		return ""
	}
}
