package get_working_hours

import (
	"context"

	"github.com/BookABite/reservation-service/internal/domain"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
