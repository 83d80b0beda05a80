package models

import (
	"time"

	"github.com/rovart/BookingService/internal/domain"
)

// Request модели

// ListReservationsRequest фильтры административного списка
type ListReservationsRequest struct {
	Date   *string `json:"date,omitempty"`   // YYYY-MM-DD (опционально)
	Status *string `json:"status,omitempty"` // Pending | Confirmed | Cancelled (опционально)
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// CustomerResponse данные клиента в составе брони
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ServiceResponse данные услуги в составе брони
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // минуты
}

// ReservationResponse бронь с клиентом и услугой
type ReservationResponse struct {
	ReservationID    string           `json:"reservationId"`
	BookingReference string           `json:"bookingReference"`
	Date             string           `json:"date"` // "2025-06-01"
	Time             string           `json:"time"` // "08:00 - 09:00"
	Status           string           `json:"status"`
	Address          *string          `json:"address,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	Customer         CustomerResponse `json:"customer"`
	Service          ServiceResponse  `json:"service"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// AdminCheckResponse ответ проверки административных прав
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Методы конвертации

// FromDomainView конвертирует read-модель в DTO
func FromDomainView(v *domain.ReservationView) *ReservationResponse {
	if v == nil {
		return nil
	}

	return &ReservationResponse{
		ReservationID:    v.ReservationID.String(),
		BookingReference: domain.ConfirmationReference(v.ReservationID),
		Date:             v.Date.Format(domain.DateFormat),
		Time:             v.Time,
		Status:           string(v.Status),
		Address:          v.Address,
		Notes:            v.Notes,
		Customer: CustomerResponse{
			ID:    v.CustomerID,
			Name:  v.CustomerName,
			Email: v.CustomerEmail,
			Phone: v.CustomerPhone,
		},
		Service: ServiceResponse{
			ID:       v.ServiceID,
			Name:     v.ServiceName,
			Price:    v.ServicePrice,
			Duration: v.DurationMinutes,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainViewList конвертирует список read-моделей в DTO
func FromDomainViewList(views []domain.ReservationView) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(views)),
	}

	for i := range views {
		resp.Reservations = append(resp.Reservations, *FromDomainView(&views[i]))
	}

	return resp
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	var filter domain.ReservationsFilter

	if r.Date != nil {
		date, err := domain.ParseDate(*r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}
