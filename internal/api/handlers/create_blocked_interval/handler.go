package create_blocked_interval

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
	msgInvalidTimestamp   = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval    = "некорректный блокирующий интервал"
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

// Handle POST /api/v1/units/{unitId}/blocked-intervals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /units/{unitId}/blocked-intervals - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req CreateBlockedIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /units/%d/blocked-intervals - Invalid request body: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	interval, err := req.ToDomain(unitID)
	if err != nil {
		h.logger.Warn("POST /units/%d/blocked-intervals - Failed to parse timestamps: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	created, err := h.service.AddBlockedInterval(r.Context(), userID, interval)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnitNotFound):
			h.logger.Warn("POST /units/%d/blocked-intervals - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /units/%d/blocked-intervals - Access denied: user_id=%d", unitID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule.ErrInvalidInterval):
			h.logger.Warn("POST /units/%d/blocked-intervals - Invalid interval: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /units/%d/blocked-intervals - Failed to create interval: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /units/%d/blocked-intervals - Interval created: interval_id=%d, by user_id=%d",
		unitID, created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
