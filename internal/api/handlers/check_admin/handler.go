package check_admin

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

// Handle GET /api/v1/admin/check
// Отвечает {"isAdmin": bool}; отказ провайдера идентичности дает false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/check - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.CheckPrivileged(r.Context(), actor)
	if err != nil {
		if errors.Is(err, reservations.ErrUnauthenticated) {
			handlers.RespondUnauthorized(w, msgUnauthenticated)
			return
		}
		h.logger.Error("GET /admin/check - Failed to check privileges: user_id=%s, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
