package update_working_hours

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type ScheduleService interface {
	ReplaceWeek(ctx context.Context, unitID, userID int64, week domain.WeekSchedule) error
	GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
