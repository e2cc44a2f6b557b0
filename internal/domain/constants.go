package domain

import "github.com/BookABite/reservation-service/pkg/types"

// Default booking policy values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultMinDurationMinutes     = 30
	DefaultMaxDurationMinutes     = 240 // 4 hours
	DefaultMaxPartySize           = 20
	DefaultMinNoticeMinutes       = 60 // 1 hour
)

// Business validation constants
const (
	MinPartySize                = 1
	MinGranularityMinutes       = 5
	MaxGranularityMinutes       = 240
	MaxObservationLength        = 500
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 200
)

// Default working hours used when a unit has no stored schedule
const (
	DefaultOpeningTime = types.TimeString("09:00")
	DefaultClosingTime = types.TimeString("18:00")
)

// DateFormat is the wire format for reservation dates
const DateFormat = "2006-01-02" // YYYY-MM-DD

// InactiveStatuses список статусов, исключаемых из выдачи по умолчанию.
// Завершенные бронирования остаются видимыми в календаре персонала,
// отмененные скрываются.
var InactiveStatuses = []BookingStatus{
	StatusCanceled,
}
