package update_working_hours

import (
	"time"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/pkg/types"
)

// WorkingHourRuleItem правило рабочих часов одного дня недели
type WorkingHourRuleItem struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
	IsClosed    bool   `json:"isClosed"`
}

// UpdateWorkingHoursRequest HTTP request model.
// Расписание заменяется целиком, ровно семь правил.
type UpdateWorkingHoursRequest struct {
	Rules []WorkingHourRuleItem `json:"rules"`
}

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	UnitID  int64                 `json:"unitId"`
	Rules   []WorkingHourRuleItem `json:"rules"`
	Summary []string              `json:"summary"`
}

// ToDomain конвертирует HTTP запрос в недельное расписание
func (r *UpdateWorkingHoursRequest) ToDomain() (domain.WeekSchedule, error) {
	week := make(domain.WeekSchedule, 0, len(r.Rules))
	for _, item := range r.Rules {
		rule := domain.WorkingHourRule{
			DayOfWeek: time.Weekday(item.DayOfWeek),
			IsClosed:  item.IsClosed,
		}

		if !item.IsClosed {
			opening, err := types.NewTimeStringFromString(item.OpeningTime)
			if err != nil {
				return nil, err
			}
			closing, err := types.NewTimeStringFromString(item.ClosingTime)
			if err != nil {
				return nil, err
			}
			rule.OpeningTime = opening
			rule.ClosingTime = closing
		}

		week = append(week, rule)
	}

	return week, nil
}

// FromDomain конвертирует недельное расписание в HTTP response
func FromDomain(unitID int64, week domain.WeekSchedule) *WorkingHoursResponse {
	rules := make([]WorkingHourRuleItem, 0, len(week))
	for _, rule := range week {
		item := WorkingHourRuleItem{
			DayOfWeek: int(rule.DayOfWeek),
			IsClosed:  rule.IsClosed,
		}
		if !rule.IsClosed {
			item.OpeningTime = rule.OpeningTime.String()
			item.ClosingTime = rule.ClosingTime.String()
		}
		rules = append(rules, item)
	}

	return &WorkingHoursResponse{
		UnitID:  unitID,
		Rules:   rules,
		Summary: domain.SummarizeWeek(week),
	}
}
