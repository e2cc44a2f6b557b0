package delete_blocked_interval

import "context"

type ScheduleService interface {
	RemoveBlockedInterval(ctx context.Context, unitID, userID, intervalID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
