package readstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/pkg/psqlbuilder"
)

// ReservationReadStore денормализованные выборки бронирований для списков
// Запросы строит squirrel, сканирование в структуры делает sqlx
type ReservationReadStore struct {
	db *sqlx.DB
}

// NewReservationReadStore оборачивает открытое соединение lib/pq
func NewReservationReadStore(db *sql.DB) *ReservationReadStore {
	return &ReservationReadStore{db: sqlx.NewDb(db, "postgres")}
}

func baseQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"r.reservation_id",
		"r.date",
		"r.time",
		"r.status",
		"r.address",
		"r.notes",
		"r.created_at",
		"r.updated_at",
		"c.id AS customer_id",
		"c.name AS customer_name",
		"c.email AS customer_email",
		"c.phone AS customer_phone",
		"s.id AS service_id",
		"s.name AS service_name",
		"s.price AS service_price",
		"s.duration_minutes",
	).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Join("services s ON s.id = r.service_id")
}

// ListReservations возвращает брони по фильтру, новые даты первыми
func (s *ReservationReadStore) ListReservations(ctx context.Context, filter domain.ReservationsFilter) ([]domain.ReservationView, error) {
	builder := baseQuery()

	if filter.CustomerEmail != nil {
		builder = builder.Where(squirrel.Eq{"c.email": *filter.CustomerEmail})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"r.date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"r.status": string(*filter.Status)})
	}

	query, args, err := builder.OrderBy("r.date DESC", "r.time DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservations - build select query: %v", ErrBuildQuery, err)
	}

	var rows []reservationRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ListReservations - select: %w", ErrExecQuery, err)
	}

	views := make([]domain.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toDomain())
	}

	return views, nil
}

// GetReservation возвращает одну бронь с данными клиента и услуги
func (s *ReservationReadStore) GetReservation(ctx context.Context, id uuid.UUID) (*domain.ReservationView, error) {
	query, args, err := baseQuery().
		Where(squirrel.Eq{"r.reservation_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservation - build select query: %v", ErrBuildQuery, err)
	}

	var row reservationRow
	err = s.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservation - get: %w", ErrExecQuery, err)
	}

	view := row.toDomain()
	return &view, nil
}
