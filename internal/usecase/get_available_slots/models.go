package get_available_slots

import (
	"time"

	"github.com/BookABite/reservation-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UnitID             int64     // ID юнита
	Date               time.Time // Дата для получения слотов (без времени)
	DurationMinutes    int       // Желаемая длительность бронирования
	GranularityMinutes int       // Шаг сетки слотов; 0 = значение из политики
}

// Response модель ответа со списком доступных слотов
type Response struct {
	UnitID             int64              // ID юнита
	Date               time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes    int                // Длительность бронирования
	GranularityMinutes int                // Использованный шаг сетки
	Slots              []types.TimeString // Доступные времена начала, по возрастанию
}
