package list_reservations

import (
	"net/url"

	"github.com/rovart/BookingService/internal/service/reservations/models"
)

// ToServiceRequest собирает фильтры из query параметров
// Пустые значения означают отсутствие фильтра
func ToServiceRequest(query url.Values) *models.ListReservationsRequest {
	req := &models.ListReservationsRequest{}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	return req
}
