package get_availability

import (
	"net/http"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/domain"
	getAvailability "github.com/rovart/BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /availability - Failed to resolve availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	if result.Degraded {
		h.logger.Warn("GET /availability - Served without occupancy data: date=%s", dateStr)
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
