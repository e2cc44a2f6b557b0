package get_working_hours

import (
	"github.com/BookABite/reservation-service/internal/domain"
)

// WorkingHourRuleItem правило рабочих часов одного дня недели
type WorkingHourRuleItem struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье
	OpeningTime string `json:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty"`
	IsClosed    bool   `json:"isClosed"`
}

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	UnitID  int64                 `json:"unitId"`
	Rules   []WorkingHourRuleItem `json:"rules"`
	Summary []string              `json:"summary"`
}

// FromDomain конвертирует недельное расписание в HTTP response.
// Summary содержит свернутое человекочитаемое представление недели.
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
