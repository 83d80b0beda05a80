package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations"
	"github.com/rovart/BookingService/internal/service/reservations/models"
	"github.com/rovart/BookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListAll(ctx context.Context, actor *domain.Actor, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	args := m.Called(ctx, actor, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ReservationListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func list(h *Handler, target string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockService{}
	admin := &domain.Actor{UserID: "admin_1"}
	svc.On("ListAll", mock.Anything, admin, mock.MatchedBy(func(r *models.ListReservationsRequest) bool {
		return r.Date != nil && *r.Date == "2025-06-02" && r.Status != nil && *r.Status == "Pending"
	})).Return(&models.ReservationListResponse{Reservations: []models.ReservationResponse{{ReservationID: "x"}}}, nil)

	rec := list(NewHandler(svc, logger.Nop()), "/api/v1/admin/reservations?date=2025-06-02&status=Pending", admin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reservations"`)
	svc.AssertExpectations(t)
}

func TestToServiceRequest_EmptyMeansNoFilter(t *testing.T) {
	req := ToServiceRequest(map[string][]string{"date": {""}})

	assert.Nil(t, req.Date)
	assert.Nil(t, req.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"forbidden": {err: reservations.ErrAccessDenied, want: http.StatusForbidden},
		"invalid":   {err: reservations.ErrInvalidInput, want: http.StatusBadRequest},
		"internal":  {err: reservations.ErrInternal, want: http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListAll", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := list(NewHandler(svc, logger.Nop()), "/api/v1/admin/reservations?status=Done", &domain.Actor{UserID: "u"})

			assert.Equal(t, tt.want, rec.Code)
		})
	}

	assert.Equal(t, http.StatusUnauthorized, list(NewHandler(&mockService{}, logger.Nop()), "/api/v1/admin/reservations", nil).Code)
}
