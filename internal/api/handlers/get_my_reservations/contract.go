package get_my_reservations

import (
	"context"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListForCustomer(ctx context.Context, actor *domain.Actor) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
