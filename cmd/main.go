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

	checkAvailabilityHandler "github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers/create_booking"
	getAppointmentTypesHandler "github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers/get_appointment_types"
	getBookingHandler "github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers/get_business_hours"
	"github.com/m04kA/SMC-ClinicScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduler/internal/config"
	bookingRepo "github.com/m04kA/SMC-ClinicScheduler/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/SMC-ClinicScheduler/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/metrics"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/txmanager"
)

// BookingRepository объединяет интерфейсы хранилища, которые требуют
// usecases и сервисы; реализуется и in-memory, и postgres репозиторием
type BookingRepository interface {
	checkAvailabilityUC.BookingRepository
	createBookingUC.BookingRepository
	bookingsService.BookingRepository
}

// TxManager интерфейс transaction manager'а для usecase создания бронирования
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SMC-ClinicScheduler...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Рабочие часы клиники
	openTime, closeTime := cfg.Clinic.ClinicHours()
	log.Info("Clinic hours: %s-%s, slot interval %d min", openTime, closeTime, cfg.Clinic.SlotIntervalMinutes)

	var (
		repository BookingRepository
		txMgr      TxManager
	)

	// Инициализируем хранилище бронирований
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.WrapPlain(db)
		}

		repository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	case config.StorageMemory:
		// In-memory реестр: данные живут до перезапуска процесса.
		// Взаимоисключение check-then-insert даёт глобальный мьютекс.
		repository = bookingRepo.NewMemoryRepository()
		txMgr = simpletxmanager.NewTransactionManager()
		log.Info("Using in-memory booking storage (bookings are lost on restart)")
	}

	schedule := checkAvailabilityUC.Schedule{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotIntervalMinutes: cfg.Clinic.SlotIntervalMinutes,
	}
	bookingSchedule := createBookingUC.Schedule{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotIntervalMinutes: cfg.Clinic.SlotIntervalMinutes,
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(repository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(repository, schedule, log)
	createBookingUseCase := createBookingUC.NewUseCase(repository, txMgr, bookingSchedule, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAppointmentTypes := getAppointmentTypesHandler.NewHandler(log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(openTime, closeTime, cfg.Clinic.SlotIntervalMinutes, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для браузерного мастера записи
	r.Use(middleware.CORS)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Проверка доступных слотов
	r.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	r.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Справочники для мастера записи
	r.HandleFunc("/appointment-types", getAppointmentTypes.Handle).Methods(http.MethodGet)
	r.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

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
