package create_booking

import (
	"time"

	"github.com/BookABite/reservation-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UnitID          int64            // ID юнита
	ReservationDate time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала HH:MM
	DurationMinutes int              // Длительность в минутах
	AmountOfPeople  int              // Число гостей
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента
	CustomerEmail   *string          // Email клиента (опционально)
	Observation     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID       int64            // ID созданного бронирования
	UnitID          int64            // ID юнита
	GroupID         int64            // ID группы юнита
	ReservationDate time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (исключительно)
	DurationMinutes int              // Длительность
	AmountOfPeople  int              // Число гостей
	Status          string           // Статус: confirmed
	CreatedAt       time.Time        // Время создания записи
}
