package get_available_slots

import (
	"context"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByUnitWithFilter получает бронирования юнита на конкретную дату
	GetByUnitWithFilter(ctx context.Context, filter domain.UnitBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error)
}

// BlockedIntervalRepository интерфейс репозитория блокирующих интервалов
type BlockedIntervalRepository interface {
	ListOverlapping(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.BlockedInterval, error)
}

// GroupServiceClient интерфейс клиента для GroupService
type GroupServiceClient interface {
	GetUnit(ctx context.Context, unitID int64) (*groupservice.Unit, error)
}

// TxManager выполняет функцию в read-only транзакции, чтобы оба чтения
// (блокировки и бронирования) видели один снимок данных
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
