package check_admin

import (
	"context"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	CheckPrivileged(ctx context.Context, actor *domain.Actor) (*models.AdminCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
