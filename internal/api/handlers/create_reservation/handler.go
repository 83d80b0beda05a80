package create_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/api/middleware"
	createReservation "github.com/rovart/BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotInPast         = "the selected time slot has already started"
	msgSlotNotAvailable   = "the selected time slot is no longer available"
	msgTimeout            = "the booking could not be completed in time, please retry"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Аутентификация не обязательна: при наличии токена ID пользователя попадает в логи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var actorID *string
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		actorID = &userID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrTimeout):
			h.logger.Error("POST /bookings - Timed out: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgTimeout)

		default:
			h.logger.Error("POST /bookings - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Reservation created successfully: reservation_id=%s, ref=%s",
		result.ReservationID, result.BookingReference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// validationMessage текст ошибки валидации без префикса пакета
func validationMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), createReservation.ErrInvalidInput.Error()+": "); ok && msg != "" {
		return msg
	}
	return "invalid booking data"
}
