package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
)

// ReservationReader денормализованные выборки для списков
type ReservationReader interface {
	ListReservations(ctx context.Context, filter domain.ReservationsFilter) ([]domain.ReservationView, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*domain.ReservationView, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error)
}

// PrivilegeChecker проверка административных прав во внешнем identity-провайдере
type PrivilegeChecker interface {
	IsPrivileged(ctx context.Context, actor domain.Actor) bool
}

// MetricsRecorder бизнес-метрики смены статуса
type MetricsRecorder interface {
	StatusUpdated(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
