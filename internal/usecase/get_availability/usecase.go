package get_availability

import (
	"context"
	"fmt"

	"github.com/rovart/BookingService/internal/domain"
)

// UseCase use case получения доступности слотов на день
type UseCase struct {
	reservationRepo ReservationRepository
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
// Ошибка хранилища не возвращается вызывающему: ответ строится без учета занятости,
// прошлые слоты по-прежнему закрыты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)
	now := uc.timeProvider.Now()

	uc.logger.Info("GetAvailability: date=%s", date.Format(domain.DateFormat))

	degraded := false
	reserved, err := uc.reservationRepo.GetReservedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load reservations for %s, serving without occupancy: %v",
			date.Format(domain.DateFormat), err)
		uc.metrics.AvailabilityFallback()
		reserved = nil
		degraded = true
	}

	slots := Resolve(date, now, reserved)

	return &Response{
		Date:     date,
		Timezone: domain.BusinessTimezone,
		Slots:    slots,
		Degraded: degraded,
	}, nil
}
