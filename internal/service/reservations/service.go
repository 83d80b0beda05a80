package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/infra/readstore"
	reservationRepo "github.com/rovart/BookingService/internal/infra/storage/reservation"
	"github.com/rovart/BookingService/internal/service/reservations/models"
)

// Service сервис административных и пользовательских выборок бронирований
type Service struct {
	reader     ReservationReader
	repo       ReservationRepository
	privileges PrivilegeChecker
	metrics    MetricsRecorder
	logger     Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reader ReservationReader,
	repo ReservationRepository,
	privileges PrivilegeChecker,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		reader:     reader,
		repo:       repo,
		privileges: privileges,
		metrics:    metrics,
		logger:     logger,
	}
}

// CheckPrivileged сообщает, есть ли у пользователя административные права
// Ошибки провайдера уже сведены клиентом к false
func (s *Service) CheckPrivileged(ctx context.Context, actor *domain.Actor) (*models.AdminCheckResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	isAdmin := s.privileges.IsPrivileged(ctx, *actor)
	s.logger.Info("CheckPrivileged: user=%s admin=%t", actor.UserID, isAdmin)

	return &models.AdminCheckResponse{IsAdmin: isAdmin}, nil
}

// ListAll возвращает все бронирования (новые даты первыми)
// Доступно только администратору
func (s *Service) ListAll(ctx context.Context, actor *domain.Actor, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if err := s.requirePrivileged(ctx, actor, "ListAll"); err != nil {
		return nil, err
	}

	if req == nil {
		req = &models.ListReservationsRequest{}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAll: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	views, err := s.reader.ListReservations(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: readstore error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - readstore error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d reservations for admin=%s", len(views), actor.UserID)
	return models.FromDomainViewList(views), nil
}

// ListForCustomer возвращает брони, оформленные на email текущего пользователя
func (s *Service) ListForCustomer(ctx context.Context, actor *domain.Actor) (*models.ReservationListResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.Email == "" {
		s.logger.Warn("ListForCustomer: user=%s has no email claim", actor.UserID)
		return nil, fmt.Errorf("%w: identity has no email", ErrUnauthenticated)
	}

	email := actor.Email
	views, err := s.reader.ListReservations(ctx, domain.ReservationsFilter{CustomerEmail: &email})
	if err != nil {
		s.logger.Error("ListForCustomer: readstore error for user=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: ListForCustomer - readstore error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCustomer: fetched %d reservations for user=%s", len(views), actor.UserID)
	return models.FromDomainViewList(views), nil
}

// UpdateStatus выставляет бронированию один из трех статусов
// Переходы не ограничиваются; доступно только администратору
func (s *Service) UpdateStatus(ctx context.Context, actor *domain.Actor, reservationID string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	if err := s.requirePrivileged(ctx, actor, "UpdateStatus"); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		s.logger.Warn("UpdateStatus: malformed reservation id=%q", reservationID)
		return nil, fmt.Errorf("%w: malformed reservation id", ErrInvalidInput)
	}

	if req == nil {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	status, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for reservation id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: status must be one of Pending, Confirmed, Cancelled", ErrInvalidInput)
	}

	s.logger.Info("UpdateStatus: reservation id=%s to status=%s by admin=%s", id, status, actor.UserID)

	if _, err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: reservation id=%s slot is already taken", id)
			return nil, ErrSlotNotAvailable
		default:
			s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.metrics.StatusUpdated(string(status))

	view, err := s.reader.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, readstore.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: readstore error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - readstore error: %v", ErrInternal, err)
	}

	return models.FromDomainView(view), nil
}

func (s *Service) requirePrivileged(ctx context.Context, actor *domain.Actor, op string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !s.privileges.IsPrivileged(ctx, *actor) {
		s.logger.Warn("%s: access denied for user=%s", op, actor.UserID)
		return ErrAccessDenied
	}
	return nil
}
