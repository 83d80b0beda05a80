package get_my_reservations

import (
	"errors"
	"net/http"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/service/reservations"
)

const msgUnauthenticated = "authentication required"

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

// Handle GET /api/v1/me/reservations
// Брони клиента ищутся по email из токена
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /me/reservations - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.ListForCustomer(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnauthenticated):
			h.logger.Warn("GET /me/reservations - Actor without email: user_id=%s", actor.UserID)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("GET /me/reservations - Failed to list reservations: user_id=%s, error=%v",
				actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/reservations - Reservations retrieved: user_id=%s, count=%d",
		actor.UserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
