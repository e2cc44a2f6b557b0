package get_blocked_intervals

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type ScheduleService interface {
	ListBlockedIntervals(ctx context.Context, unitID, userID int64) ([]*domain.BlockedInterval, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
