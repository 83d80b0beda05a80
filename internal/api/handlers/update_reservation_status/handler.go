package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/service/reservations"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthenticated    = "authentication required"
	msgForbidden          = "access denied"
	msgNotFound           = "reservation not found"
	msgInvalidStatus      = "invalid reservation id or status"
	msgSlotNotAvailable   = "the slot of this reservation is already taken"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{reservationId}
// Body: {"status": "Pending" | "Confirmed" | "Cancelled"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/reservations/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), actor, reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/reservations/{id} - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id} - Invalid input: id=%s, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id} - Not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /admin/reservations/{id} - Slot taken: id=%s", reservationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PATCH /admin/reservations/{id} - Failed to update status: id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id} - Status updated: id=%s, status=%s", reservationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
