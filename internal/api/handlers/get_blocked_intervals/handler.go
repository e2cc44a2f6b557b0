package get_blocked_intervals

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
	msgInvalidUnitID = "некорректный ID юнита"
	msgUnitNotFound  = "юнит не найден"
	msgAccessDenied  = "доступ запрещен"
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

// Handle GET /api/v1/units/{unitId}/blocked-intervals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{unitId}/blocked-intervals - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	list, err := h.service.ListBlockedIntervals(r.Context(), unitID, userID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnitNotFound):
			h.logger.Warn("GET /units/%d/blocked-intervals - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /units/%d/blocked-intervals - Access denied: user_id=%d", unitID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /units/%d/blocked-intervals - Invalid input: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		default:
			h.logger.Error("GET /units/%d/blocked-intervals - Failed to list intervals: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(unitID, list))
}
