package get_availability

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetReservedTimes метки слотов, на которые есть брони в указанный день
	GetReservedTimes(ctx context.Context, date time.Time) ([]string, error)
}

// MetricsRecorder счетчик деградаций при недоступном хранилище
type MetricsRecorder interface {
	AvailabilityFallback()
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
