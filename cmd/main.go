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

	cancelAppointmentHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/cancel_appointment"
	catalogHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/catalog"
	clientsHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/clients"
	completePastHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/complete_past_appointments"
	createAppointmentHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/delete_appointment"
	employeesHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/employees"
	getAppointmentHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/get_appointment"
	getWeekCalendarHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/get_week_calendar"
	listAppointmentsHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/list_appointments"
	updateAppointmentHandler "github.com/AnthonyDelgadoMiami/nail-salon/internal/api/handlers/update_appointment"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/api/middleware"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/config"
	appointmentRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/appointment"
	clientRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/client"
	employeeRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/employee"
	serviceRepo "github.com/AnthonyDelgadoMiami/nail-salon/internal/infra/storage/service"
	"github.com/AnthonyDelgadoMiami/nail-salon/internal/schedule"
	appointmentsService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/appointments"
	catalogService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/catalog"
	clientsService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/clients"
	employeesService "github.com/AnthonyDelgadoMiami/nail-salon/internal/service/employees"
	completePastUC "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/complete_past_appointments"
	createAppointmentUC "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/create_appointment"
	getWeekCalendarUC "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/get_week_calendar"
	updateAppointmentUC "github.com/AnthonyDelgadoMiami/nail-salon/internal/usecase/update_appointment"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/dbmetrics"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/logger"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/metrics"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/simpletxmanager"
	"github.com/AnthonyDelgadoMiami/nail-salon/pkg/txmanager"
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

	log.Info("Starting nail-salon booking service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
		serviceRepository     *serviceRepo.Repository
		employeeRepository    *employeeRepo.Repository
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
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Конфигурация календарной сетки
	gridConfig := schedule.GridConfig{
		DayStartHour: cfg.Calendar.DayStartHour,
		DayEndHour:   cfg.Calendar.DayEndHour,
		SlotMinutes:  cfg.Calendar.SlotMinutes,
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, appointmentRepository, log)
	employeesSvc := employeesService.NewService(employeeRepository, appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		serviceRepository,
		employeeRepository,
		txMgr,
		cfg.Calendar.ScopeByStaff,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		serviceRepository,
		employeeRepository,
		txMgr,
		cfg.Calendar.ScopeByStaff,
		log,
	)

	getWeekCalendarUseCase := getWeekCalendarUC.NewUseCase(appointmentRepository, gridConfig, log)
	completePastUseCase := completePastUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	completePast := completePastHandler.NewHandler(completePastUseCase, log)
	getWeekCalendar := getWeekCalendarHandler.NewHandler(getWeekCalendarUseCase, log)
	clients := clientsHandler.NewHandler(clientsSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	employees := employeesHandler.NewHandler(employeesSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Просмотр записей и недельного календаря
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/week", getWeekCalendar.Handle).Methods(http.MethodGet)

	// Каталог услуг (чтение)
	api.HandleFunc("/services", catalog.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", catalog.HandleGet).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Employee-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/check-past", completePast.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/clients", clients.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients", clients.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", clients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", clients.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{clientId}", clients.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/clients/{clientId}/appointments", clients.HandleHistory).Methods(http.MethodGet)

	// --- Каталог услуг (управление) ---
	protected.HandleFunc("/services", catalog.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", catalog.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", catalog.HandleDelete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	protected.HandleFunc("/employees", employees.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/employees", employees.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", employees.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", employees.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{employeeId}", employees.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/employees/{employeeId}/appointments", employees.HandleAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}/stats", employees.HandleStats).Methods(http.MethodGet)

	// Фоновый sweep прошедших записей (если включен)
	stopSweepCh := make(chan struct{})
	if cfg.Calendar.SweepIntervalMinutes > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Calendar.SweepIntervalMinutes) * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if _, err := completePastUseCase.Execute(context.Background()); err != nil {
						log.Error("Background sweep failed: %v", err)
					}
				case <-stopSweepCh:
					return
				}
			}
		}()
		log.Info("Background sweep enabled, interval=%dm", cfg.Calendar.SweepIntervalMinutes)
	}

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

	// Останавливаем фоновый sweep
	if cfg.Calendar.SweepIntervalMinutes > 0 {
		close(stopSweepCh)
	}

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
