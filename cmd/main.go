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

	cancelAllBookingsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/cancel_all_bookings"
	cancelBookingHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/cancel_booking"
	cancelCurrentCustomerHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/cancel_current_customer"
	completeCurrentCustomerHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/complete_current_customer"
	createBookingHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/create_booking"
	getBookableSlotsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/get_bookable_slots"
	getBookingHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/get_booking"
	getSalonBookingsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/get_salon_bookings"
	getUserBookingsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/get_user_bookings"
	listSalonsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/list_salons"
	registerSalonHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/register_salon"
	updateSalonSettingsHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/update_salon_settings"
	walkinBookingHandler "github.com/uzairqr/SalonBook-Service/internal/api/handlers/walkin_booking"
	"github.com/uzairqr/SalonBook-Service/internal/api/middleware"
	"github.com/uzairqr/SalonBook-Service/internal/config"
	bookingsRepo "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	salonsRepo "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
	bookingsService "github.com/uzairqr/SalonBook-Service/internal/service/bookings"
	salonsService "github.com/uzairqr/SalonBook-Service/internal/service/salons"
	createBookingUC "github.com/uzairqr/SalonBook-Service/internal/usecase/create_booking"
	getBookableSlotsUC "github.com/uzairqr/SalonBook-Service/internal/usecase/get_bookable_slots"
	walkinBookingUC "github.com/uzairqr/SalonBook-Service/internal/usecase/walkin_booking"
	"github.com/uzairqr/SalonBook-Service/pkg/docstore"
	"github.com/uzairqr/SalonBook-Service/pkg/logger"
	"github.com/uzairqr/SalonBook-Service/pkg/metrics"
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

	log.Info("Starting SalonBook-Service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем версионированное хранилище коллекций
	store := docstore.New(db)
	if cfg.Metrics.Enabled {
		store = store.WithConflictObserver(metricsCollector)
	}

	// Инициализируем репозитории
	salonRepository := salonsRepo.NewRepository(store)
	bookingRepository := bookingsRepo.NewRepository(store)

	// Инициализируем сервисы
	salonSvc := salonsService.NewService(salonRepository, cfg.Engine.ListingLeadMinutes, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases: у клиентского и walk-in путей разные
	// параметры сетки и буфера
	getBookableSlotsUseCase := getBookableSlotsUC.NewUseCase(
		bookingRepository,
		salonRepository,
		getBookableSlotsUC.Params{
			GridStepMinutes:  cfg.Engine.GridStepMinutes,
			BufferMinutes:    cfg.Engine.BookingBufferMinutes,
			OpenGraceMinutes: cfg.Engine.OpenGraceMinutes,
		},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		createBookingUC.Params{
			GridStepMinutes:  cfg.Engine.GridStepMinutes,
			BufferMinutes:    cfg.Engine.BookingBufferMinutes,
			OpenGraceMinutes: cfg.Engine.OpenGraceMinutes,
			MaxCommitRetries: 3,
		},
		log,
	)
	walkinBookingUseCase := walkinBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		walkinBookingUC.Params{
			GridStepMinutes:  cfg.Engine.WalkinGridStepMinutes,
			BufferMinutes:    cfg.Engine.WalkinBufferMinutes,
			OpenGraceMinutes: cfg.Engine.OpenGraceMinutes,
			MaxCommitRetries: 3,
		},
		log,
	)

	// Инициализируем handlers
	listSalons := listSalonsHandler.NewHandler(salonSvc, log)
	registerSalon := registerSalonHandler.NewHandler(salonSvc, log)
	updateSalonSettings := updateSalonSettingsHandler.NewHandler(salonSvc, log)
	getBookableSlots := getBookableSlotsHandler.NewHandler(getBookableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	walkinBooking := walkinBookingHandler.NewHandler(walkinBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	completeCurrentCustomer := completeCurrentCustomerHandler.NewHandler(bookingSvc, log)
	cancelCurrentCustomer := cancelCurrentCustomerHandler.NewHandler(bookingSvc, log)
	cancelAllBookings := cancelAllBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Витрина салонов
	api.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)

	// Регистрация салона
	api.HandleFunc("/salons", registerSalon.Handle).Methods(http.MethodPost)

	// Настройки салона
	api.HandleFunc("/salons/{salonName}", updateSalonSettings.Handle).Methods(http.MethodPut)

	// Доступные слоты для услуги
	api.HandleFunc("/salons/{salonName}/bookable-slots", getBookableSlots.Handle).Methods(http.MethodGet)

	// Поиск бронирования по коду
	api.HandleFunc("/bookings/{code}", getBooking.Handle).Methods(http.MethodGet)

	// Панель салона: бронирования по статусам
	api.HandleFunc("/salons/{salonName}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Панель салона: walk-in бронирование
	api.HandleFunc("/salons/{salonName}/walkin-bookings", walkinBooking.Handle).Methods(http.MethodPost)

	// Панель салона: завершить / отменить текущего клиента
	api.HandleFunc("/salons/{salonName}/bookings/current/complete", completeCurrentCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salons/{salonName}/bookings/current/cancel", cancelCurrentCustomer.Handle).Methods(http.MethodPost)

	// Панель салона: массовая отмена незавершённых бронирований
	api.HandleFunc("/salons/{salonName}/bookings", cancelAllBookings.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Device-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования клиентом (удаление записи)
	protected.HandleFunc("/bookings/{code}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований устройства
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
