package get_availability

import (
	"github.com/rovart/BookingService/internal/domain"
	getAvailability "github.com/rovart/BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string          `json:"date"`
	Slots    map[string]bool `json:"slots"`
	Timezone string          `json:"timezone"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    resp.Slots,
		Timezone: resp.Timezone,
	}
}
