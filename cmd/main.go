package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/BookABite/reservation-service/internal/api/handlers/cancel_booking"
	createBlockedIntervalHandler "github.com/BookABite/reservation-service/internal/api/handlers/create_blocked_interval"
	createBookingHandler "github.com/BookABite/reservation-service/internal/api/handlers/create_booking"
	deleteBlockedIntervalHandler "github.com/BookABite/reservation-service/internal/api/handlers/delete_blocked_interval"
	finishBookingHandler "github.com/BookABite/reservation-service/internal/api/handlers/finish_booking"
	getAvailableSlotsHandler "github.com/BookABite/reservation-service/internal/api/handlers/get_available_slots"
	getBlockedIntervalsHandler "github.com/BookABite/reservation-service/internal/api/handlers/get_blocked_intervals"
	getBookingHandler "github.com/BookABite/reservation-service/internal/api/handlers/get_booking"
	getUnitBookingsHandler "github.com/BookABite/reservation-service/internal/api/handlers/get_unit_bookings"
	getWorkingHoursHandler "github.com/BookABite/reservation-service/internal/api/handlers/get_working_hours"
	updateWorkingHoursHandler "github.com/BookABite/reservation-service/internal/api/handlers/update_working_hours"
	"github.com/BookABite/reservation-service/internal/api/middleware"
	"github.com/BookABite/reservation-service/internal/config"
	blockedIntervalRepo "github.com/BookABite/reservation-service/internal/infra/storage/blockedinterval"
	bookingRepo "github.com/BookABite/reservation-service/internal/infra/storage/booking"
	scheduleRepo "github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	groupServiceClient "github.com/BookABite/reservation-service/internal/integrations/groupservice"
	notifierClient "github.com/BookABite/reservation-service/internal/integrations/notifier"
	bookingsService "github.com/BookABite/reservation-service/internal/service/bookings"
	scheduleService "github.com/BookABite/reservation-service/internal/service/schedule"
	createBookingUC "github.com/BookABite/reservation-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/BookABite/reservation-service/internal/usecase/get_available_slots"
	"github.com/BookABite/reservation-service/pkg/dbmetrics"
	"github.com/BookABite/reservation-service/pkg/logger"
	"github.com/BookABite/reservation-service/pkg/metrics"
	"github.com/BookABite/reservation-service/pkg/simpletxmanager"
	"github.com/BookABite/reservation-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	groupClient := groupServiceClient.NewClient(
		cfg.GroupService.URL,
		time.Duration(cfg.GroupService.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GroupService=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.GroupService.URL, cfg.GroupService.Timeout, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		blockedRepository  *blockedIntervalRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blockedRepository = blockedIntervalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blockedRepository = blockedIntervalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		groupClient,
		notifier,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		blockedRepository,
		groupClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockedRepository,
		groupClient,
		notifier,
		txMgr,
		timeProvider,
		cfg.Booking,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		blockedRepository,
		groupClient,
		txMgr,
		timeProvider,
		cfg.Booking,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	finishBooking := finishBookingHandler.NewHandler(bookingSvc, log)
	getUnitBookings := getUnitBookingsHandler.NewHandler(bookingSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createBlockedInterval := createBlockedIntervalHandler.NewHandler(scheduleSvc, log)
	deleteBlockedInterval := deleteBlockedIntervalHandler.NewHandler(scheduleSvc, log)
	getBlockedIntervals := getBlockedIntervalsHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	registerRoutes(api, routeHandlers{
		getAvailableSlots:     getAvailableSlots.Handle,
		getWorkingHours:       getWorkingHours.Handle,
		createBooking:         createBooking.Handle,
		getBooking:            getBooking.Handle,
		cancelBooking:         cancelBooking.Handle,
		finishBooking:         finishBooking.Handle,
		getUnitBookings:       getUnitBookings.Handle,
		updateWorkingHours:    updateWorkingHours.Handle,
		createBlockedInterval: createBlockedInterval.Handle,
		deleteBlockedInterval: deleteBlockedInterval.Handle,
		getBlockedIntervals:   getBlockedIntervals.Handle,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// routeHandlers HTTP-обработчики API, сгруппированные для регистрации маршрутов
type routeHandlers struct {
	getAvailableSlots     http.HandlerFunc
	getWorkingHours       http.HandlerFunc
	createBooking         http.HandlerFunc
	getBooking            http.HandlerFunc
	cancelBooking         http.HandlerFunc
	finishBooking         http.HandlerFunc
	getUnitBookings       http.HandlerFunc
	updateWorkingHours    http.HandlerFunc
	createBlockedInterval http.HandlerFunc
	deleteBlockedInterval http.HandlerFunc
	getBlockedIntervals   http.HandlerFunc
}

// registerRoutes регистрирует маршруты API на subrouter
func registerRoutes(api *mux.Router, h routeHandlers) {
	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты бронирования на дату
	api.HandleFunc("/units/{unitId}/available-slots",
		h.getAvailableSlots).Methods(http.MethodGet)

	// Рабочие часы юнита
	api.HandleFunc("/units/{unitId}/working-hours",
		h.getWorkingHours).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.createBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", h.getBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", h.cancelBooking).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/finish", h.finishBooking).Methods(http.MethodPatch)

	// Календарь бронирований юнита
	protected.HandleFunc("/units/{unitId}/bookings", h.getUnitBookings).Methods(http.MethodGet)

	// --- Управление расписанием (для менеджеров) ---
	protected.HandleFunc("/units/{unitId}/working-hours", h.updateWorkingHours).Methods(http.MethodPut)
	protected.HandleFunc("/units/{unitId}/blocked-intervals", h.getBlockedIntervals).Methods(http.MethodGet)
	protected.HandleFunc("/units/{unitId}/blocked-intervals", h.createBlockedInterval).Methods(http.MethodPost)
	protected.HandleFunc("/units/{unitId}/blocked-intervals/{intervalId}", h.deleteBlockedInterval).Methods(http.MethodDelete)
}
