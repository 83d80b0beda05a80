package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rovart/BookingService/internal/api"
	checkAdminHandler "github.com/rovart/BookingService/internal/api/handlers/check_admin"
	createReservationHandler "github.com/rovart/BookingService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/rovart/BookingService/internal/api/handlers/get_availability"
	getMyReservationsHandler "github.com/rovart/BookingService/internal/api/handlers/get_my_reservations"
	listReservationsHandler "github.com/rovart/BookingService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/rovart/BookingService/internal/api/handlers/list_services"
	updateReservationStatusHandler "github.com/rovart/BookingService/internal/api/handlers/update_reservation_status"
	"github.com/rovart/BookingService/internal/api/middleware"
	"github.com/rovart/BookingService/internal/infra/readstore"
	customerRepo "github.com/rovart/BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/rovart/BookingService/internal/infra/storage/reservation"
	serviceRepo "github.com/rovart/BookingService/internal/infra/storage/service"
	identityClient "github.com/rovart/BookingService/internal/integrations/identity"
	"github.com/rovart/BookingService/internal/migrations"
	catalogService "github.com/rovart/BookingService/internal/service/catalog"
	reservationsService "github.com/rovart/BookingService/internal/service/reservations"
	createReservationUC "github.com/rovart/BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/rovart/BookingService/internal/usecase/get_availability"
	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/metrics"
	"github.com/rovart/BookingService/pkg/txmanager"
)

func runServe(parent context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer log.Close()
	defer db.Close()

	log.Info("Starting BookingService %s...", Version)

	// Схема применяется при старте, повторный запуск идемпотентен
	if _, err := migrations.Up(ctx, db, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		rec              metrics.Recorder = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		rec = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// При выключенных метриках обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB).
		WithRetries(cfg.Booking.MaxTxRetries, cfg.Booking.RetryBackoff())

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	reservationReadStore := readstore.NewReservationReadStore(wrappedDB.Raw())

	// Интеграции
	identity := identityClient.NewClient(
		cfg.Identity.BaseURL,
		cfg.Identity.SecretKey,
		cfg.Identity.AdminEmails,
		cfg.Identity.RequestTimeout(),
		log,
	)
	log.Info("Identity client initialized (base_url=%s timeout=%ds admin_emails=%d)",
		cfg.Identity.BaseURL, cfg.Identity.Timeout, len(cfg.Identity.AdminEmails))

	// Сервисы
	reservationsSvc := reservationsService.NewService(reservationReadStore, reservationRepository, identity, rec, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationRepository, rec, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		customerRepository,
		serviceRepository,
		txMgr,
		rec,
		log,
	)

	router := api.NewRouter(api.RouterConfig{
		Handlers: api.Handlers{
			GetAvailability:         getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
			CreateReservation:       createReservationHandler.NewHandler(createReservationUseCase, log),
			ListServices:            listServicesHandler.NewHandler(catalogSvc, log),
			GetMyReservations:       getMyReservationsHandler.NewHandler(reservationsSvc, log),
			CheckAdmin:              checkAdminHandler.NewHandler(reservationsSvc, log),
			ListReservations:        listReservationsHandler.NewHandler(reservationsSvc, log),
			UpdateReservationStatus: updateReservationStatusHandler.NewHandler(reservationsSvc, log),
		},
		Tokens:         middleware.NewTokenValidator(cfg.Identity.JWTSecret, cfg.Identity.JWTIssuer),
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		RequestTimeout: cfg.Server.RequestBudget(),
		DB:             wrappedDB,
		Logger:         log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error("Server failed: %v", err)
			return err
		}
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
