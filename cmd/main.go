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

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	createReservationHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/create_table"
	deleteReservationHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/delete_reservation"
	deleteTableHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/delete_table"
	finishTableHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/finish_table"
	getReservationHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/list_tables"
	seatTableHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/seat_table"
	updateReservationHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/periodictables/PT-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/periodictables/PT-ReservationService/internal/api/middleware"
	"github.com/periodictables/PT-ReservationService/internal/config"
	reservationRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
	reservationsService "github.com/periodictables/PT-ReservationService/internal/service/reservations"
	tablesService "github.com/periodictables/PT-ReservationService/internal/service/tables"
	createReservationUC "github.com/periodictables/PT-ReservationService/internal/usecase/create_reservation"
	finishTableUC "github.com/periodictables/PT-ReservationService/internal/usecase/finish_table"
	seatTableUC "github.com/periodictables/PT-ReservationService/internal/usecase/seat_table"
	updateReservationUC "github.com/periodictables/PT-ReservationService/internal/usecase/update_reservation"
	"github.com/periodictables/PT-ReservationService/pkg/dbmetrics"
	"github.com/periodictables/PT-ReservationService/pkg/logger"
	"github.com/periodictables/PT-ReservationService/pkg/metrics"
	"github.com/periodictables/PT-ReservationService/pkg/simpletxmanager"
	"github.com/periodictables/PT-ReservationService/pkg/txmanager"
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

	log.Info("Starting PT-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Часы работы ресторана
	hours, err := cfg.Restaurant.OperatingHours()
	if err != nil {
		log.Fatal("Invalid restaurant configuration: %v", err)
	}
	log.Info("Operating hours: %s - %s, closed on %s",
		hours.Opening, hours.Closing, hours.ClosedWeekday)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		cfg.Restaurant.ExactPhoneMatch,
		log,
	)
	tablesSvc := tablesService.NewService(
		tableRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationRepository, hours, log)
	updateReservationUseCase := updateReservationUC.NewUseCase(reservationRepository, hours, log)
	seatTableUseCase := seatTableUC.NewUseCase(reservationRepository, tableRepository, txMgr, log)
	finishTableUseCase := finishTableUC.NewUseCase(reservationRepository, tableRepository, txMgr, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	listTables := listTablesHandler.NewHandler(tablesSvc, log)
	seatTable := seatTableHandler.NewHandler(seatTableUseCase, log)
	finishTable := finishTableHandler.NewHandler(finishTableUseCase, log)
	deleteTable := deleteTableHandler.NewHandler(tablesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// --- Бронирования ---
	r.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPut)

	// --- Столики ---
	r.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	r.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	r.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/tables/{tableId}/seat", seatTable.Handle).Methods(http.MethodPut)
	r.HandleFunc("/tables/{tableId}/seat", finishTable.Handle).Methods(http.MethodDelete)

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
