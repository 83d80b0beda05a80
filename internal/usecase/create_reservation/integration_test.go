//go:build integration

package create_reservation_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/infra/pgtest"
	customerRepo "github.com/rovart/BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/rovart/BookingService/internal/infra/storage/reservation"
	serviceRepo "github.com/rovart/BookingService/internal/infra/storage/service"
	createReservation "github.com/rovart/BookingService/internal/usecase/create_reservation"
	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/logger"
	"github.com/rovart/BookingService/pkg/metrics"
	"github.com/rovart/BookingService/pkg/txmanager"
)

func request(date string, n int) *createReservation.Request {
	return &createReservation.Request{
		Service: createReservation.ServiceInput{
			ID: "bridal", Name: "Bridal makeup", Price: 200, DurationMinutes: 120,
		},
		Date: date,
		Time: "10:00 - 11:00",
		Customer: createReservation.CustomerInput{
			Name:  fmt.Sprintf("Customer %d", n),
			Email: fmt.Sprintf("customer%d@example.mg", n),
			Phone: "341234567",
		},
	}
}

func TestConcurrentBookingsOfOneSlot(t *testing.T) {
	db := pgtest.Start(t)
	wrapped := dbmetrics.Wrap(db, nil)

	reservations := reservationRepo.NewRepository(wrapped)
	uc := createReservation.NewUseCase(
		reservations,
		customerRepo.NewRepository(wrapped),
		serviceRepo.NewRepository(wrapped),
		txmanager.NewTransactionManager(wrapped).WithRetries(10, 10*time.Millisecond),
		metrics.Nop{},
		logger.Nop(),
	)

	date := domain.Today(time.Now()).AddDate(0, 0, 30).Format(domain.DateFormat)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
		other     []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), request(date, n))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, createReservation.ErrSlotNotAvailable):
				conflicts++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	parsed, err := domain.ParseDate(date)
	require.NoError(t, err)
	times, err := reservations.GetReservedTimes(context.Background(), parsed)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 - 11:00"}, times)
}

func TestCancelledReservationFreesSlotForWriter(t *testing.T) {
	db := pgtest.Start(t)
	wrapped := dbmetrics.Wrap(db, nil)

	reservations := reservationRepo.NewRepository(wrapped)
	uc := createReservation.NewUseCase(
		reservations,
		customerRepo.NewRepository(wrapped),
		serviceRepo.NewRepository(wrapped),
		txmanager.NewTransactionManager(wrapped),
		metrics.Nop{},
		logger.Nop(),
	)
	ctx := context.Background()
	date := domain.Today(time.Now()).AddDate(0, 0, 10).Format(domain.DateFormat)

	first, err := uc.Execute(ctx, request(date, 1))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, request(date, 2))
	require.ErrorIs(t, err, createReservation.ErrSlotNotAvailable)

	_, err = reservations.UpdateStatus(ctx, first.ReservationID, domain.StatusCancelled)
	require.NoError(t, err)

	second, err := uc.Execute(ctx, request(date, 2))
	require.NoError(t, err)
	assert.NotEqual(t, first.ReservationID, second.ReservationID)

	// Возврат отмененной брони на занятый слот нарушает уникальность активного слота
	_, err = reservations.UpdateStatus(ctx, first.ReservationID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, reservationRepo.ErrSlotTaken)

	// Тот же email обновляет клиента, а не создает второго
	assert.Equal(t, "customer2@example.mg", second.CustomerEmail)
	var customers int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&customers))
	assert.Equal(t, 2, customers)
}
