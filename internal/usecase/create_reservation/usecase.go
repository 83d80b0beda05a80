package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
	reservationRepo "github.com/rovart/BookingService/internal/infra/storage/reservation"
	"github.com/rovart/BookingService/internal/usecase/get_availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	customerRepo    CustomerRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	newID           func() uuid.UUID
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.New,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Upsert клиента, upsert услуги, повторная проверка слота и вставка выполняются
// в одной сериализуемой транзакции; при конфликте сериализации она повторяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных до обращения к хранилищу
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	actor := "anonymous"
	if req.ActorID != nil {
		actor = *req.ActorID
	}
	uc.logger.Info("CreateReservation: actor=%s, service=%s, date=%s, time=%s",
		actor, in.service.ID, in.date.Format(domain.DateFormat), in.slot.Label())

	// 2. Слот, который резолвер считает прошедшим, бронировать нельзя
	now := uc.timeProvider.Now()
	if get_availability.IsSlotInPast(in.date, in.slot, now) {
		uc.logger.Warn("CreateReservation: slot %s %s is in the past", in.date.Format(domain.DateFormat), in.slot.Label())
		return nil, fmt.Errorf("%w: %s %s", ErrSlotInPast, in.date.Format(domain.DateFormat), in.slot.Label())
	}

	var (
		customer *domain.Customer
		service  *domain.Service
		result   *domain.Reservation
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Клиент по email: новый или обновленный
		c, err := uc.customerRepo.UpsertByEmail(txCtx, &domain.Customer{
			Name:  in.customer.Name,
			Email: in.customer.Email,
			Phone: in.customer.Phone,
		})
		if err != nil {
			return err
		}

		// 3.2. Услуга по внешнему ключу
		s, err := uc.serviceRepo.UpsertByKey(txCtx, &domain.Service{
			ID:              in.service.ID,
			Name:            in.service.Name,
			Price:           in.service.Price,
			DurationMinutes: in.service.DurationMinutes,
		})
		if err != nil {
			return err
		}

		// 3.3. Повторная проверка занятости слота с блокировкой
		taken, err := uc.reservationRepo.IsSlotTaken(txCtx, in.date, in.slot.Label())
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotNotAvailable
		}

		// 3.4. Вставка; уникальный индекс по (date, time) закрывает оставшуюся гонку
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ID:         uc.newID(),
			Date:       in.date,
			Time:       in.slot.Label(),
			Status:     domain.StatusConfirmed,
			CustomerID: c.ID,
			ServiceID:  s.ID,
			Address:    in.customer.Address,
			Notes:      in.customer.Notes,
		})
		if err != nil {
			return err
		}

		customer, service, result = c, s, created
		return nil
	})

	if err != nil {
		return nil, uc.translateError(ctx, in, err)
	}

	uc.metrics.ReservationCreated()
	uc.logger.Info("CreateReservation: created reservation id=%s ref=%s", result.ID, result.ConfirmationReference())

	return &Response{
		ReservationID:    result.ID,
		BookingReference: result.ConfirmationReference(),
		Date:             result.Date,
		Time:             result.Time,
		Status:           string(result.Status),
		Address:          result.Address,
		Notes:            result.Notes,
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		CustomerEmail:    customer.Email,
		CustomerPhone:    customer.Phone,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		ServicePrice:     service.Price,
		DurationMinutes:  service.DurationMinutes,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// translateError переводит ошибки хранилища в ошибки use case
func (uc *UseCase) translateError(ctx context.Context, in *validatedRequest, err error) error {
	slot := in.date.Format(domain.DateFormat) + " " + in.slot.Label()

	switch {
	case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, reservationRepo.ErrSlotTaken):
		uc.metrics.ReservationConflict()
		uc.logger.Warn("CreateReservation: slot %s is already taken", slot)
		return fmt.Errorf("%w: %s", ErrSlotNotAvailable, slot)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		uc.logger.Error("CreateReservation: timed out for slot %s: %v", slot, err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		uc.logger.Error("CreateReservation: failed to create reservation for slot %s: %v", slot, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
