package delete_blocked_interval

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
	msgInvalidUnitID     = "некорректный ID юнита"
	msgInvalidIntervalID = "некорректный ID блокирующего интервала"
	msgIntervalNotFound  = "блокирующий интервал не найден"
	msgUnitNotFound      = "юнит не найден"
	msgAccessDenied      = "доступ запрещен"
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

// Handle DELETE /api/v1/units/{unitId}/blocked-intervals/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /units/{unitId}/blocked-intervals/{intervalId} - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /units/%d/blocked-intervals/{intervalId} - Invalid interval ID: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	if err := h.service.RemoveBlockedInterval(r.Context(), unitID, userID, intervalID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrIntervalNotFound):
			h.logger.Warn("DELETE /units/%d/blocked-intervals/%d - Interval not found", unitID, intervalID)
			handlers.RespondNotFound(w, msgIntervalNotFound)

		case errors.Is(err, schedule.ErrUnitNotFound):
			h.logger.Warn("DELETE /units/%d/blocked-intervals/%d - Unit not found", unitID, intervalID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /units/%d/blocked-intervals/%d - Access denied: user_id=%d", unitID, intervalID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /units/%d/blocked-intervals/%d - Failed to delete interval: %v", unitID, intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /units/%d/blocked-intervals/%d - Interval removed by user_id=%d", unitID, intervalID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
