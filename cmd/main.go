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

	allocateDemandHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/allocate_demand"
	createClaimHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/create_claim"
	deleteClaimsHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/delete_claims"
	getAvailabilityHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_availability"
	getSlotsHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_slots"
	rescheduleClaimHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/reschedule_claim"
	"github.com/m04kA/SMC-CapacityService/internal/api/middleware"
	"github.com/m04kA/SMC-CapacityService/internal/config"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	claimRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/claim"
	slotRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/slot"
	boardAPIClient "github.com/m04kA/SMC-CapacityService/internal/integrations/boardapi"
	ledgerService "github.com/m04kA/SMC-CapacityService/internal/service/ledger"
	slotsService "github.com/m04kA/SMC-CapacityService/internal/service/slots"
	allocateDemandUC "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
	getAvailabilityUC "github.com/m04kA/SMC-CapacityService/internal/usecase/get_availability"
	rescheduleClaimUC "github.com/m04kA/SMC-CapacityService/internal/usecase/reschedule_claim"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/logger"
	"github.com/m04kA/SMC-CapacityService/pkg/metrics"
	"github.com/m04kA/SMC-CapacityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CapacityService/pkg/txmanager"
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

	log.Info("Starting SMC-CapacityService...")
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

	// Инициализируем клиента внешнего справочника слотов
	boardClient := boardAPIClient.NewClient(
		cfg.BoardAPI.URL,
		cfg.BoardAPI.Token,
		time.Duration(cfg.BoardAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Board API client initialized (url=%s, timeout=%ds)",
		cfg.BoardAPI.URL, cfg.BoardAPI.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		channelRepository *channelRepo.Repository
		claimRepository   *claimRepo.Repository
		slotRepository    *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		channelRepository = channelRepo.NewRepository(wrappedDB)
		claimRepository = claimRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		channelRepository = channelRepo.NewRepository(db)
		claimRepository = claimRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(
		slotRepository,
		boardClient,
		log,
	)
	ledgerSvc := ledgerService.NewService(
		claimRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		channelRepository,
		claimRepository,
		slotsSvc,
		log,
	)

	allocateDemandUseCase := allocateDemandUC.NewUseCase(
		channelRepository,
		claimRepository,
		slotsSvc,
		log,
	)

	rescheduleClaimUseCase := rescheduleClaimUC.NewUseCase(
		channelRepository,
		claimRepository,
		allocateDemandUseCase,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getSlots := getSlotsHandler.NewHandler(slotsSvc, log)
	allocateDemand := allocateDemandHandler.NewHandler(allocateDemandUseCase, log)
	createClaim := createClaimHandler.NewHandler(ledgerSvc, log)
	deleteClaims := deleteClaimsHandler.NewHandler(ledgerSvc, log)
	rescheduleClaim := rescheduleClaimHandler.NewHandler(rescheduleClaimUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Почасовая доступность канала на дату
	api.HandleFunc("/channels/{channelName}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Каталог слотов группы
	api.HandleFunc("/slot-groups/{groupId}/slots",
		getSlots.Handle).Methods(http.MethodGet)

	// Распределение пакета спроса по слотам (без записи в журнал)
	api.HandleFunc("/allocations", allocateDemand.Handle).Methods(http.MethodPost)

	// --- Журнал резервирований ---
	api.HandleFunc("/claims", createClaim.Handle).Methods(http.MethodPost)
	api.HandleFunc("/claims", deleteClaims.Handle).Methods(http.MethodDelete)

	// Перенос резервирования на новый слот
	api.HandleFunc("/claims/reschedule", rescheduleClaim.Handle).Methods(http.MethodPost)

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
