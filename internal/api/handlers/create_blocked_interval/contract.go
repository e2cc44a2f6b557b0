package create_blocked_interval

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type ScheduleService interface {
	AddBlockedInterval(ctx context.Context, userID int64, interval *domain.BlockedInterval) (*domain.BlockedInterval, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
