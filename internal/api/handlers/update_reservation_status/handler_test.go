package update_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/service/reservations"
	"github.com/rovart/BookingService/internal/service/reservations/models"
	"github.com/rovart/BookingService/pkg/logger"
)

const reservationID = "3f2a9c1e-7b4d-4e2a-9f10-2b6c8d4e5a71"

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, actor *domain.Actor, id string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, actor, id, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ReservationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func patch(h *Handler, body string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/"+reservationID, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": reservationID})
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &mockService{}
	admin := &domain.Actor{UserID: "admin_1"}
	svc.On("UpdateStatus", mock.Anything, admin, reservationID, &models.UpdateStatusRequest{Status: "Cancelled"}).
		Return(&models.ReservationResponse{ReservationID: reservationID, Status: "Cancelled"}, nil)

	rec := patch(NewHandler(svc, logger.Nop()), `{"status":"Cancelled"}`, admin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"forbidden": {err: reservations.ErrAccessDenied, want: http.StatusForbidden},
		"not found": {err: reservations.ErrReservationNotFound, want: http.StatusNotFound},
		"invalid":   {err: reservations.ErrInvalidInput, want: http.StatusBadRequest},
		"conflict":  {err: reservations.ErrSlotNotAvailable, want: http.StatusConflict},
		"internal":  {err: reservations.ErrInternal, want: http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(NewHandler(svc, logger.Nop()), `{"status":"Pending"}`, &domain.Actor{UserID: "u"})

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_RequiresActorAndBody(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, http.StatusUnauthorized, patch(h, `{"status":"Pending"}`, nil).Code)
	assert.Equal(t, http.StatusBadRequest, patch(h, `status=Pending`, &domain.Actor{UserID: "u"}).Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
