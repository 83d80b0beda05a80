package list_reservations

import (
	"context"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListAll(ctx context.Context, actor *domain.Actor, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
