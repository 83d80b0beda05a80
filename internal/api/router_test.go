package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listReservationsHandler "github.com/rovart/BookingService/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/rovart/BookingService/internal/api/handlers/update_reservation_status"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/domain"
	"github.com/rovart/BookingService/internal/infra/readstore"
	reservationRepo "github.com/rovart/BookingService/internal/infra/storage/reservation"
	"github.com/rovart/BookingService/internal/service/reservations"
	"github.com/rovart/BookingService/pkg/logger"
	"github.com/rovart/BookingService/pkg/metrics"
)

const secret = "router-secret"

type named string

func (n named) Handle(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte(n))
}

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func stubHandlers() Handlers {
	return Handlers{
		GetAvailability:         named("availability"),
		CreateReservation:       named("create"),
		ListServices:            named("services"),
		GetMyReservations:       named("mine"),
		CheckAdmin:              named("check"),
		ListReservations:        named("list"),
		UpdateReservationStatus: named("update"),
	}
}

func newTestRouter(db Pinger) http.Handler {
	return newRouterWith(stubHandlers(), db)
}

func newRouterWith(h Handlers, db Pinger) http.Handler {
	return NewRouter(RouterConfig{
		Handlers:       h,
		Tokens:         middleware.NewTokenValidator(secret, ""),
		Metrics:        metrics.New("router_test"),
		MetricsPath:    "/metrics",
		RequestTimeout: time.Second,
		DB:             db,
		Logger:         logger.Nop(),
	})
}

func token(t *testing.T, subject string) string {
	t.Helper()
	claims := middleware.Claims{
		Email: subject + "@example.mg",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(pinger{})

	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		wantStatus int
		wantBody   string
	}{
		{name: "availability", method: http.MethodGet, path: "/api/v1/availability?date=2025-06-02", wantStatus: 200, wantBody: "availability"},
		{name: "services", method: http.MethodGet, path: "/api/v1/services", wantStatus: 200, wantBody: "services"},
		{name: "guest booking", method: http.MethodPost, path: "/api/v1/bookings", wantStatus: 200, wantBody: "create"},
		{name: "my reservations anonymous", method: http.MethodGet, path: "/api/v1/me/reservations", wantStatus: 401},
		{name: "my reservations", method: http.MethodGet, path: "/api/v1/me/reservations", auth: "user_1", wantStatus: 200, wantBody: "mine"},
		{name: "admin check non-admin", method: http.MethodGet, path: "/api/v1/admin/check", auth: "user_1", wantStatus: 200, wantBody: "check"},
		{name: "admin list anonymous", method: http.MethodGet, path: "/api/v1/admin/reservations", wantStatus: 401},
		{name: "admin list", method: http.MethodGet, path: "/api/v1/admin/reservations", auth: "admin_1", wantStatus: 200, wantBody: "list"},
		{name: "admin update", method: http.MethodPatch, path: "/api/v1/admin/reservations/abc", auth: "admin_1", wantStatus: 200, wantBody: "update"},
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: 200},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", token(t, tt.auth))
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_HealthzReportsDatabase(t *testing.T) {
	router := newTestRouter(pinger{err: errors.New("down")})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// countingPrivileges считает обращения к identity-провайдеру
type countingPrivileges struct {
	admins map[string]bool
	calls  int
}

func (c *countingPrivileges) IsPrivileged(_ context.Context, actor domain.Actor) bool {
	c.calls++
	return c.admins[actor.UserID]
}

type emptyReader struct{}

func (emptyReader) ListReservations(context.Context, domain.ReservationsFilter) ([]domain.ReservationView, error) {
	return nil, nil
}

func (emptyReader) GetReservation(context.Context, uuid.UUID) (*domain.ReservationView, error) {
	return nil, readstore.ErrReservationNotFound
}

type missingRepo struct{}

func (missingRepo) UpdateStatus(context.Context, uuid.UUID, domain.ReservationStatus) (*domain.Reservation, error) {
	return nil, reservationRepo.ErrReservationNotFound
}

func TestRouter_AdminRoutesCheckPrivilegeOnce(t *testing.T) {
	privileges := &countingPrivileges{admins: map[string]bool{"admin_1": true}}
	svc := reservations.NewService(emptyReader{}, missingRepo{}, privileges, metrics.Nop{}, logger.Nop())

	h := stubHandlers()
	h.ListReservations = listReservationsHandler.NewHandler(svc, logger.Nop())
	h.UpdateReservationStatus = updateReservationStatusHandler.NewHandler(svc, logger.Nop())
	router := newRouterWith(h, pinger{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       string
		wantStatus int
		wantCalls  int
	}{
		{name: "list as admin", method: http.MethodGet, path: "/api/v1/admin/reservations", auth: "admin_1", wantStatus: http.StatusOK, wantCalls: 1},
		{name: "list as customer", method: http.MethodGet, path: "/api/v1/admin/reservations", auth: "user_1", wantStatus: http.StatusForbidden, wantCalls: 1},
		{name: "list anonymous", method: http.MethodGet, path: "/api/v1/admin/reservations", wantStatus: http.StatusUnauthorized, wantCalls: 0},
		{
			name: "update as customer", method: http.MethodPatch, body: `{"status":"Cancelled"}`,
			path: "/api/v1/admin/reservations/3f2a9c1e-7b4d-4e2a-9f10-2b6c8d4e5a71", auth: "user_1",
			wantStatus: http.StatusForbidden, wantCalls: 1,
		},
		{
			name: "update as admin", method: http.MethodPatch, body: `{"status":"Cancelled"}`,
			path: "/api/v1/admin/reservations/3f2a9c1e-7b4d-4e2a-9f10-2b6c8d4e5a71", auth: "admin_1",
			wantStatus: http.StatusNotFound, wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			privileges.calls = 0
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", token(t, tt.auth))
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, privileges.calls)
		})
	}
}
