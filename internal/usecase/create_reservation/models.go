package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
// Поля приходят как есть от клиента, разбор и проверка выполняются в validateRequest
type Request struct {
	Service  ServiceInput
	Date     string // YYYY-MM-DD
	Time     string // метка слота, например "10:00 - 11:00"
	Customer CustomerInput

	ActorID *string // ID пользователя из токена, если запрос аутентифицирован (только для логов)
}

// ServiceInput выбранная услуга каталога
type ServiceInput struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
}

// CustomerInput контактные данные клиента
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address *string
	Notes   *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID    uuid.UUID
	BookingReference string
	Date             time.Time
	Time             string
	Status           string
	Address          *string
	Notes            *string

	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID       string
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	CreatedAt time.Time
}

// validatedRequest запрос после разбора и нормализации
type validatedRequest struct {
	date     time.Time
	slot     domain.Slot
	service  ServiceInput
	customer CustomerInput
}
