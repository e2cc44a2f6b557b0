package get_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/BookABite/reservation-service/internal/api/handlers"
	"github.com/BookABite/reservation-service/internal/service/schedule"
)

const (
	msgInvalidUnitID = "некорректный ID юнита"
	msgUnitNotFound  = "юнит не найден"
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

// Handle GET /api/v1/units/{unitId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{unitId}/working-hours - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	week, err := h.service.GetWeek(r.Context(), unitID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnitNotFound):
			h.logger.Warn("GET /units/%d/working-hours - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /units/%d/working-hours - Invalid input: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		default:
			h.logger.Error("GET /units/%d/working-hours - Failed to get schedule: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(unitID, week))
}
