package create_reservation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rovart/BookingService/internal/domain"
	createReservation "github.com/rovart/BookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Service  ServiceRequest  `json:"service"`
	Date     string          `json:"date"` // "2025-06-01"
	Time     string          `json:"time"` // "10:00 - 11:00"
	Customer CustomerRequest `json:"customer"`
}

// ServiceRequest выбранная услуга
type ServiceRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Duration DurationMinutes `json:"duration"`
}

// CustomerRequest контактные данные
type CustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// DurationMinutes длительность в минутах
// В JSON принимается число минут (60) или строка длительности ("1h", "90m", "1h30m")
type DurationMinutes int

func (d *DurationMinutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if parsed%time.Minute != 0 {
			return fmt.Errorf("invalid duration %q: minutes must be whole", s)
		}
		*d = DurationMinutes(parsed / time.Minute)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s: %w", string(data), err)
	}
	if n != math.Trunc(n) {
		return fmt.Errorf("invalid duration %s: minutes must be whole", string(data))
	}
	*d = DurationMinutes(n)
	return nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	BookingReference string         `json:"bookingReference"`
	ReservationID    string         `json:"reservationId"`
	Booking          BookingDetails `json:"booking"`
}

// BookingDetails сохраненная бронь
type BookingDetails struct {
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Status   string           `json:"status"`
	Service  ServiceResponse  `json:"service"`
	Customer CustomerResponse `json:"customer"`
	Address  *string          `json:"address,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
	Created  string           `json:"createdAt"`
}

type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Разбор даты и слота выполняет use case, чтобы ошибки валидации были в одном месте
func (r *CreateReservationRequest) ToUseCaseRequest(actorID *string) *createReservation.Request {
	return &createReservation.Request{
		Service: createReservation.ServiceInput{
			ID:              r.Service.ID,
			Name:            r.Service.Name,
			Price:           r.Service.Price,
			DurationMinutes: int(r.Service.Duration),
		},
		Date: r.Date,
		Time: r.Time,
		Customer: createReservation.CustomerInput{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
			Notes:   r.Customer.Notes,
		},
		ActorID: actorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		BookingReference: resp.BookingReference,
		ReservationID:    resp.ReservationID.String(),
		Booking: BookingDetails{
			Date:   resp.Date.Format(domain.DateFormat),
			Time:   resp.Time,
			Status: resp.Status,
			Service: ServiceResponse{
				ID:       resp.ServiceID,
				Name:     resp.ServiceName,
				Price:    resp.ServicePrice,
				Duration: resp.DurationMinutes,
			},
			Customer: CustomerResponse{
				Name:  resp.CustomerName,
				Email: resp.CustomerEmail,
				Phone: resp.CustomerPhone,
			},
			Address: resp.Address,
			Notes:   resp.Notes,
			Created: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
