package models

import "github.com/rovart/BookingService/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // минуты
}

// ServiceListResponse каталог услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Duration: s.DurationMinutes,
		})
	}
	return resp
}
