package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/BookABite/reservation-service/internal/api/handlers"
	"github.com/BookABite/reservation-service/internal/api/middleware"
	"github.com/BookABite/reservation-service/internal/service/schedule"
)

const (
	msgInvalidUnitID      = "некорректный ID юнита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "расписание должно содержать ровно одно правило на каждый день недели"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgUnitNotFound       = "юнит не найден"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/units/{unitId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /units/{unitId}/working-hours - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /units/%d/working-hours - Invalid request body: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	week, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /units/%d/working-hours - Failed to parse rules: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.ReplaceWeek(r.Context(), unitID, userID, week); err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnitNotFound):
			h.logger.Warn("PUT /units/%d/working-hours - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /units/%d/working-hours - Access denied: user_id=%d", unitID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PUT /units/%d/working-hours - Invalid schedule: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /units/%d/working-hours - Failed to replace schedule: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /units/%d/working-hours - Schedule replaced by user_id=%d", unitID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(unitID, week))
}
