package get_available_slots

import (
	"fmt"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unit_id must be positive", ErrInvalidInput)
	}

	if err := uc.validateDate(req.Date); err != nil {
		return err
	}

	if req.DurationMinutes < uc.policy.MinDurationMinutes || req.DurationMinutes > uc.policy.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d outside [%d, %d]",
			ErrInvalidDuration, req.DurationMinutes, uc.policy.MinDurationMinutes, uc.policy.MaxDurationMinutes)
	}

	if req.GranularityMinutes < domain.MinGranularityMinutes || req.GranularityMinutes > domain.MaxGranularityMinutes {
		return fmt.Errorf("%w: granularity %d outside [%d, %d]",
			ErrInvalidGranularity, req.GranularityMinutes, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
	}

	return nil
}

// validateDate проверяет, что дата не нулевая и не в прошлом
func (uc *UseCase) validateDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	if requested.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	return nil
}
