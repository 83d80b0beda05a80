package list_reservations

import (
	"errors"
	"net/http"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/service/reservations"
)

const (
	msgUnauthenticated = "authentication required"
	msgForbidden       = "access denied"
	msgInvalidParams   = "invalid query parameters"
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

// Handle GET /api/v1/admin/reservations
// Query params: date, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/reservations - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.ListAll(r.Context(), actor, ToServiceRequest(r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /admin/reservations - Access denied: user_id=%s", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: user_id=%s, count=%d",
		actor.UserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
