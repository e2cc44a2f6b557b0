package notifier

// BookingEvent уведомление о событии бронирования.
// Notifier доставляет его клиенту через внешний канал (WhatsApp,
// realtime-сообщения); содержимое канала этот сервис не контролирует.
type BookingEvent struct {
	BookingID       int64   `json:"booking_id"`
	UnitID          int64   `json:"unit_id"`
	GroupID         int64   `json:"group_id"`
	ReservationDate string  `json:"reservation_date"` // YYYY-MM-DD
	StartTime       string  `json:"start_time"`       // HH:MM
	DurationMinutes int     `json:"duration_minutes"`
	AmountOfPeople  int     `json:"amount_of_people"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	Status          string  `json:"status"`
	Reason          *string `json:"reason,omitempty"`
}
