package customer

import (
	"context"
	"fmt"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByEmail создает клиента или обновляет имя и телефон существующего с тем же email
// Email является естественным ключом: повторная бронь с тем же email не создает второго клиента
func (r *Repository) UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone").
		Values(customer.Name, customer.Email, customer.Phone).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name, phone = EXCLUDED.phone, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByEmail - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByEmail - execute upsert: %w", ErrExecQuery, err)
	}

	return customer, nil
}
