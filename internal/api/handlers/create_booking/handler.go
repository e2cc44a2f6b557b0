package create_booking

import (
	"errors"
	"net/http"

	"github.com/BookABite/reservation-service/internal/api/handlers"
	"github.com/BookABite/reservation-service/internal/domain"
	createBooking "github.com/BookABite/reservation-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnitNotFound       = "юнит не найден"
	msgUnitClosed         = "юнит закрыт в выбранное время"
	msgTimeBlocked        = "выбранное время заблокировано"
	msgSlotConflict       = "выбранное время уже занято"
	msgInvalidPartySize   = "недопустимое число гостей"
	msgInvalidDuration    = "недопустимая длительность бронирования"
	msgInvalidDate        = "некорректная дата бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отклонения по правилам доступности несут машиночитаемый код причины
		switch {
		case errors.Is(err, createBooking.ErrUnitNotFound):
			h.logger.Warn("POST /bookings - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, createBooking.ErrClosed):
			h.logger.Warn("POST /bookings - Unit closed: unit_id=%d, date=%s", req.UnitID, req.ReservationDate)
			handlers.RespondRejection(w, http.StatusConflict, msgUnitClosed, domain.ReasonClosed)

		case errors.Is(err, createBooking.ErrBlocked):
			h.logger.Warn("POST /bookings - Time blocked: unit_id=%d, date=%s", req.UnitID, req.ReservationDate)
			handlers.RespondRejection(w, http.StatusConflict, msgTimeBlocked, domain.ReasonBlocked)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Slot conflict: unit_id=%d, date=%s, start=%s",
				req.UnitID, req.ReservationDate, req.StartTime)
			handlers.RespondRejection(w, http.StatusConflict, msgSlotConflict, domain.ReasonConflict)

		case errors.Is(err, createBooking.ErrInvalidPartySize):
			h.logger.Warn("POST /bookings - Invalid party size: unit_id=%d, amount=%d", req.UnitID, req.AmountOfPeople)
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInvalidPartySize, domain.ReasonInvalidPartySize)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: unit_id=%d, duration=%d", req.UnitID, req.DurationMinutes)
			handlers.RespondRejection(w, http.StatusUnprocessableEntity, msgInvalidDuration, domain.ReasonInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: unit_id=%d, date=%s", req.UnitID, req.ReservationDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: unit_id=%d, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, unit_id=%d", result.BookingID, result.UnitID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
