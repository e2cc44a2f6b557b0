package get_unit_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/BookABite/reservation-service/internal/api/handlers"
	"github.com/BookABite/reservation-service/internal/api/middleware"
	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/service/bookings"
)

const (
	msgInvalidUnitID = "некорректный ID юнита"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
	msgUnitNotFound  = "юнит не найден"
	msgAccessDenied  = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseInt(mux.Vars(r)["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{unitId}/bookings - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	filter, err := buildFilter(unitID, r)
	if err != nil {
		h.logger.Warn("GET /units/%d/bookings - Invalid filter: %v", unitID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	list, err := h.service.GetUnitBookings(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnitNotFound):
			h.logger.Warn("GET /units/%d/bookings - Unit not found", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /units/%d/bookings - Access denied: user_id=%d", unitID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /units/%d/bookings - Invalid input: %v", unitID, err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)

		default:
			h.logger.Error("GET /units/%d/bookings - Failed to get bookings: %v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response, err := FromDomain(unitID, list)
	if err != nil {
		h.logger.Error("GET /units/%d/bookings - Failed to build response: %v", unitID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// buildFilter собирает фильтр календаря из query параметров
func buildFilter(unitID int64, r *http.Request) (domain.UnitBookingsFilter, error) {
	filter := domain.UnitBookingsFilter{UnitID: unitID}
	query := r.URL.Query()

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, errors.New(msgInvalidDate)
		}
		filter.Date = &date
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, errors.New(msgInvalidDate)
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, errors.New(msgInvalidDate)
		}
		filter.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		switch status {
		case domain.StatusConfirmed, domain.StatusFinished, domain.StatusCanceled:
			filter.Status = &status
		default:
			return filter, errors.New(msgInvalidStatus)
		}
	}

	filter.IncludeInactive = query.Get("includeInactive") == "true"

	return filter, nil
}
