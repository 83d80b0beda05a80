package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "Pending"
	StatusConfirmed ReservationStatus = "Confirmed"
	StatusCancelled ReservationStatus = "Cancelled"
)

// ErrInvalidStatus возвращается для статуса вне множества {Pending, Confirmed, Cancelled}
var ErrInvalidStatus = errors.New("domain: invalid reservation status")

// ReservationStatuses все допустимые статусы
// Переходы между ними не ограничиваются: администратор может выставить любой
var ReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseReservationStatus конвертирует строку в статус с валидацией
func ParseReservationStatus(value string) (ReservationStatus, error) {
	for _, s := range ReservationStatuses {
		if string(s) == value {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

// Reservation represents a booked slot
type Reservation struct {
	ID         uuid.UUID
	Date       time.Time // календарный день без времени
	Time       string    // каноническая метка слота
	Status     ReservationStatus
	CustomerID int64
	ServiceID  string

	Address *string
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot for new bookings
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// ConfirmationReference короткий код для клиента, производный от идентификатора
func (r *Reservation) ConfirmationReference() string {
	return ConfirmationReference(r.ID)
}

// ConfirmationReference "RVT-" + первые 8 hex-символов UUID в верхнем регистре
func ConfirmationReference(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return ConfirmationPrefix + strings.ToUpper(hex[:confirmationLength])
}

// ReservationView денормализованная модель для списков (бронь + клиент + услуга)
type ReservationView struct {
	ReservationID uuid.UUID
	Date          time.Time
	Time          string
	Status        ReservationStatus
	Address       *string
	Notes         *string

	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID       string
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationsFilter фильтр списка бронирований
type ReservationsFilter struct {
	CustomerEmail *string            // Только брони клиента (опционально)
	Date          *time.Time         // Конкретная дата (опционально)
	Status        *ReservationStatus // Фильтр по статусу (опционально)
}
