package create_booking

import (
	"context"
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование и возвращает запись с ID и временными метками
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByUnitWithFilter получает бронирования юнита; внутри транзакции
	// с фильтром по дате репозиторий блокирует строки через FOR UPDATE
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

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	NotifyBookingConfirmed(ctx context.Context, event *notifier.BookingEvent) error
}

// TxManager интерфейс менеджера транзакций.
// Проверка доступности и вставка бронирования выполняются в одной
// сериализуемой транзакции, иначе два конкурентных запроса могут
// пройти проверку по одному и тому же снимку состояния.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
