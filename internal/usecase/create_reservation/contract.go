package create_reservation

import (
	"context"
	"time"

	"github.com/rovart/BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	IsSlotTaken(ctx context.Context, date time.Time, slot string) (bool, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	UpsertByKey(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder бизнес-метрики создания бронирований
type MetricsRecorder interface {
	ReservationCreated()
	ReservationConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
