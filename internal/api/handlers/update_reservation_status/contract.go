package update_reservation_status

import (
	"context"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	UpdateStatus(ctx context.Context, actor *domain.Actor, reservationID string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
