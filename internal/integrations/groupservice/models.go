package groupservice

// Unit модель юнита (отдельной точки ресторана) из GroupService
type Unit struct {
	ID         int64   `json:"id"`
	GroupID    int64   `json:"group_id"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"`
	IsActive   bool    `json:"is_active"`
	ManagerIDs []int64 `json:"manager_ids"`
}

// ErrorResponse модель ошибки от GroupService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
