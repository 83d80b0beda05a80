package readstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
)

// reservationRow строка join'а reservations + customers + services
type reservationRow struct {
	ReservationID uuid.UUID      `db:"reservation_id"`
	Date          time.Time      `db:"date"`
	Time          string         `db:"time"`
	Status        string         `db:"status"`
	Address       sql.NullString `db:"address"`
	Notes         sql.NullString `db:"notes"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`

	CustomerID    int64  `db:"customer_id"`
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`

	ServiceID       string  `db:"service_id"`
	ServiceName     string  `db:"service_name"`
	ServicePrice    float64 `db:"service_price"`
	DurationMinutes int     `db:"duration_minutes"`
}

func (r reservationRow) toDomain() domain.ReservationView {
	view := domain.ReservationView{
		ReservationID:   r.ReservationID,
		Date:            domain.DateOnly(r.Date),
		Time:            r.Time,
		Status:          domain.ReservationStatus(r.Status),
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		DurationMinutes: r.DurationMinutes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Address.Valid {
		view.Address = &r.Address.String
	}
	if r.Notes.Valid {
		view.Notes = &r.Notes.String
	}
	return view
}
