package schedule

import (
	"context"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
)

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error)
	ReplaceWeek(ctx context.Context, unitID int64, week domain.WeekSchedule) error
}

// BlockedIntervalRepository интерфейс репозитория блокирующих интервалов
type BlockedIntervalRepository interface {
	Create(ctx context.Context, interval *domain.BlockedInterval) (*domain.BlockedInterval, error)
	Delete(ctx context.Context, unitID, id int64) error
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.BlockedInterval, error)
	ListOverlapping(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.BlockedInterval, error)
}

// GroupServiceClient интерфейс клиента для GroupService
type GroupServiceClient interface {
	GetUnit(ctx context.Context, unitID int64) (*groupservice.Unit, error)
}

// TxManager интерфейс менеджера транзакций.
// Замена расписания выполняется как DELETE + INSERT в одной транзакции.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
