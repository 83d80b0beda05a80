package catalog

import (
	"context"
	"fmt"

	"github.com/rovart/BookingService/internal/service/catalog/models"
)

// Service каталог услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает все услуги, отсортированные по названию
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}
