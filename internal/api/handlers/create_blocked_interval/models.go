package create_blocked_interval

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
)

// CreateBlockedIntervalRequest HTTP request model
type CreateBlockedIntervalRequest struct {
	StartsAt string `json:"startsAt"` // RFC3339
	EndsAt   string `json:"endsAt"`   // RFC3339
	Reason   string `json:"reason"`
}

// BlockedIntervalResponse HTTP response model
type BlockedIntervalResponse struct {
	ID        int64  `json:"id"`
	UnitID    int64  `json:"unitId"`
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateBlockedIntervalRequest) ToDomain(unitID int64) (*domain.BlockedInterval, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, err
	}

	return &domain.BlockedInterval{
		UnitID:   unitID,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Reason:   r.Reason,
	}, nil
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(interval *domain.BlockedInterval) *BlockedIntervalResponse {
	return &BlockedIntervalResponse{
		ID:        interval.ID,
		UnitID:    interval.UnitID,
		StartsAt:  interval.StartsAt.Format(time.RFC3339),
		EndsAt:    interval.EndsAt.Format(time.RFC3339),
		Reason:    interval.Reason,
		CreatedAt: interval.CreatedAt.Format(time.RFC3339),
	}
}
