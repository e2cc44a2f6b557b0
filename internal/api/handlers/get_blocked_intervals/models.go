package get_blocked_intervals

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// BlockedIntervalItem элемент списка блокирующих интервалов
type BlockedIntervalItem struct {
	ID        int64  `json:"id"`
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// BlockedIntervalsResponse HTTP response model
type BlockedIntervalsResponse struct {
	UnitID    int64                 `json:"unitId"`
	Intervals []BlockedIntervalItem `json:"intervals"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(unitID int64, list []*domain.BlockedInterval) *BlockedIntervalsResponse {
	items := make([]BlockedIntervalItem, 0, len(list))
	for _, interval := range list {
		items = append(items, BlockedIntervalItem{
			ID:        interval.ID,
			StartsAt:  interval.StartsAt.Format(time.RFC3339),
			EndsAt:    interval.EndsAt.Format(time.RFC3339),
			Reason:    interval.Reason,
			CreatedAt: interval.CreatedAt.Format(time.RFC3339),
		})
	}

	return &BlockedIntervalsResponse{
		UnitID:    unitID,
		Intervals: items,
	}
}
