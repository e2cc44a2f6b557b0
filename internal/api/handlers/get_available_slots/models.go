package get_available_slots

import (
	"github.com/BookABite/reservation-service/internal/domain"
	getAvailableSlots "github.com/BookABite/reservation-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	UnitID             int64    `json:"unitId"`
	Date               string   `json:"date"`
	DurationMinutes    int      `json:"durationMinutes"`
	GranularityMinutes int      `json:"granularityMinutes"`
	Slots              []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		UnitID:             resp.UnitID,
		Date:               resp.Date.Format(domain.DateFormat),
		DurationMinutes:    resp.DurationMinutes,
		GranularityMinutes: resp.GranularityMinutes,
		Slots:              slots,
	}
}
