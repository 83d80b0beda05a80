package service

import (
	"context"
	"fmt"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByKey создает услугу или перезаписывает name/price/duration по внешнему ключу
// Последняя бронь определяет актуальную цену услуги
func (r *Repository) UpsertByKey(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "name", "price", "duration_minutes").
		Values(service.ID, service.Name, service.Price, service.DurationMinutes).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				price = EXCLUDED.price,
				duration_minutes = EXCLUDED.duration_minutes,
				updated_at = NOW()
			RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByKey - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByKey - execute upsert: %w", ErrExecQuery, err)
	}

	return service, nil
}

// List возвращает каталог услуг, отсортированный по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"duration_minutes",
		"created_at",
		"updated_at",
	).
		From("services").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Price,
			&s.DurationMinutes,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}
