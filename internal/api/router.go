package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/pkg/metrics"
)

// Handler обработчик одного маршрута
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Pinger проверка доступности хранилища для /healthz
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers все обработчики API
type Handlers struct {
	GetAvailability         Handler
	CreateReservation       Handler
	ListServices            Handler
	GetMyReservations       Handler
	CheckAdmin              Handler
	ListReservations        Handler
	UpdateReservationStatus Handler
}

// RouterConfig зависимости роутера
type RouterConfig struct {
	Handlers       Handlers
	Tokens         *middleware.TokenValidator
	Metrics        *metrics.Metrics // nil: метрики выключены
	MetricsPath    string
	RequestTimeout time.Duration
	DB             Pinger
	Logger         middleware.Logger
}

// NewRouter собирает маршруты /api/v1, /healthz и /metrics
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recover(cfg.Logger))

	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", healthz(cfg.DB)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	h := cfg.Handlers

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", h.GetAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", h.ListServices.Handle).Methods(http.MethodGet)

	// Бронирование доступно гостям; токен, если есть, только уточняет логи
	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(cfg.Tokens, cfg.Logger))
	public.HandleFunc("/bookings", h.CreateReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Tokens, cfg.Logger))
	protected.HandleFunc("/me/reservations", h.GetMyReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/check", h.CheckAdmin.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Права администратора проверяет сервис бронирований, роутер только аутентифицирует
	protected.HandleFunc("/admin/reservations", h.ListReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/reservations/{reservationId}", h.UpdateReservationStatus.Handle).Methods(http.MethodPatch)

	return r
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
