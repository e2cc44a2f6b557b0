package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/BookABite/reservation-service/internal/api/handlers"
	"github.com/BookABite/reservation-service/internal/domain"
	getAvailableSlots "github.com/BookABite/reservation-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidUnitID      = "некорректный ID юнита"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "некорректная длительность бронирования"
	msgInvalidGranularity = "некорректный шаг сетки слотов"
	msgDateInPast         = "дата не может быть в прошлом"
	msgUnitNotFound       = "юнит не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{unitId}/available-slots - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /units/%d/available-slots - Invalid date: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /units/%d/available-slots - Invalid duration: %v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Шаг сетки опционален, 0 означает значение из политики сервиса
	granularity := 0
	if raw := query.Get("granularityMinutes"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /units/%d/available-slots - Invalid granularity: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UnitID:             unitID,
		Date:               date,
		DurationMinutes:    duration,
		GranularityMinutes: granularity,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnitNotFound):
			h.logger.Warn("GET /units/%d/available-slots - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /units/%d/available-slots - Invalid date: %v", unitID, err)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /units/%d/available-slots - Invalid duration: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidGranularity):
			h.logger.Warn("GET /units/%d/available-slots - Invalid granularity: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /units/%d/available-slots - Invalid input: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		default:
			h.logger.Error("GET /units/%d/available-slots - Failed to compute slots: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
