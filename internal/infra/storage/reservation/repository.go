package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/pgerrors"
	"github.com/rovart/BookingService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"reservation_id",
	"date",
	"time",
	"status",
	"customer_id",
	"service_id",
	"address",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение частичного уникального индекса (date, time) возвращается как ErrSlotTaken.
// Ошибка драйвера остается в цепочке (%w), чтобы txmanager мог распознать serialization failure.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"reservation_id",
			"date",
			"time",
			"status",
			"customer_id",
			"service_id",
			"address",
			"notes",
		).
		Values(
			reservation.ID,
			reservation.Date.Format(domain.DateFormat),
			reservation.Time,
			reservation.Status,
			reservation.CustomerID,
			reservation.ServiceID,
			reservation.Address,
			reservation.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	switch {
	case err == nil:
		return reservation, nil
	case pgerrors.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: Create - %s %s: %w", ErrSlotTaken, reservation.Date.Format(domain.DateFormat), reservation.Time, err)
	case pgerrors.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("%w: Create - %s: %w", ErrReferenceNotFound, pgerrors.Constraint(err), err)
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"reservation_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// GetReservedTimes возвращает метки слотов, на которые есть брони в указанный день
// Учитываются брони в любом статусе, включая отмененные
func (r *Repository) GetReservedTimes(ctx context.Context, date time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT time").
		From(table).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservedTimes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetReservedTimes - scan row: %w", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservedTimes - rows error: %w", ErrScanRow, err)
	}

	return times, nil
}

// IsSlotTaken проверяет, занят ли слот неотмененным бронированием
// Внутри транзакции найденные строки блокируются (FOR UPDATE)
func (r *Repository) IsSlotTaken(ctx context.Context, date time.Time, slot string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("reservation_id").
		From(table).
		Where(squirrel.Eq{
			"date": date.Format(domain.DateFormat),
			"time": slot,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus выставляет новый статус бронирования
// Возвращение отмененной брони в активный статус может нарушить уникальность слота: тогда ErrSlotTaken
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return reservation, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrReservationNotFound
	case pgerrors.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: UpdateStatus - %s: %w", ErrSlotTaken, id, err)
	default:
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}
}

// scanReservation сканирует одну строку в доменную модель
func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var address, notes sql.NullString

	err := row.Scan(
		&reservation.ID,
		&reservation.Date,
		&reservation.Time,
		&reservation.Status,
		&reservation.CustomerID,
		&reservation.ServiceID,
		&address,
		&notes,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Date = domain.DateOnly(reservation.Date)
	if address.Valid {
		reservation.Address = &address.String
	}
	if notes.Valid {
		reservation.Notes = &notes.String
	}

	return &reservation, nil
}
