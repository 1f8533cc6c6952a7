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

	addSessionPlanHandler "github.com/academyhall/booking-gateway/internal/api/handlers/add_session_plan"
	createFormSessionHandler "github.com/academyhall/booking-gateway/internal/api/handlers/create_form_session"
	getAcademiesHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_academies"
	getBookingHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_booking_stats"
	getCalendarHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_calendar"
	getFormSessionHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_form_session"
	getMasterDataHandler "github.com/academyhall/booking-gateway/internal/api/handlers/get_master_data"
	listBookingsHandler "github.com/academyhall/booking-gateway/internal/api/handlers/list_bookings"
	loginHandler "github.com/academyhall/booking-gateway/internal/api/handlers/login"
	logoutHandler "github.com/academyhall/booking-gateway/internal/api/handlers/logout"
	removeSessionPlanHandler "github.com/academyhall/booking-gateway/internal/api/handlers/remove_session_plan"
	submitBookingHandler "github.com/academyhall/booking-gateway/internal/api/handlers/submit_booking"
	updateFormSessionHandler "github.com/academyhall/booking-gateway/internal/api/handlers/update_form_session"
	"github.com/academyhall/booking-gateway/internal/api/middleware"
	"github.com/academyhall/booking-gateway/internal/config"
	"github.com/academyhall/booking-gateway/internal/infra/cache"
	formSessionRepo "github.com/academyhall/booking-gateway/internal/infra/storage/formsession"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
	bookingsService "github.com/academyhall/booking-gateway/internal/service/bookings"
	formSessionsService "github.com/academyhall/booking-gateway/internal/service/formsessions"
	referenceService "github.com/academyhall/booking-gateway/internal/service/reference"
	getCalendarUC "github.com/academyhall/booking-gateway/internal/usecase/get_calendar"
	submitBookingUC "github.com/academyhall/booking-gateway/internal/usecase/submit_booking"
	"github.com/academyhall/booking-gateway/pkg/debounce"
	"github.com/academyhall/booking-gateway/pkg/logger"
	"github.com/academyhall/booking-gateway/pkg/metrics"
)

// statsInvalidateDelay сглаживает серию отправок подряд: кеш счетчиков
// сбрасывается один раз после паузы, а не на каждую отправку.
const statsInvalidateDelay = 300 * time.Millisecond

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

	log.Info("Starting booking-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище черновиков форм)
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

	// Redis кеш справочников и статистики (опциональный)
	var redisCache *cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err = cache.New(
			context.Background(),
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTL)*time.Second,
		)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		log.Info("Redis cache connected (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Клиент CMS API
	var cmsMetrics cmsapi.MetricsObserver
	if cfg.Metrics.Enabled {
		cmsMetrics = metricsCollector
	}
	cmsClient := cmsapi.NewClient(
		cfg.CMS.BaseURL,
		time.Duration(cfg.CMS.Timeout)*time.Second,
		log,
		cmsMetrics,
	)
	log.Info("CMS client initialized (base_url=%s, timeout=%ds)", cfg.CMS.BaseURL, cfg.CMS.Timeout)

	// Репозитории
	formRepository := formSessionRepo.NewRepository(db)

	// Сервисы
	formSvc := formSessionsService.NewService(formRepository, log)

	var bookingsCache bookingsService.Cache
	var referenceCache referenceService.Cache
	if cfg.Redis.Enabled {
		bookingsCache = redisCache
		referenceCache = redisCache
	}
	var cacheMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		cacheMetrics = metricsCollector
	}

	var bookingsCacheMetrics bookingsService.CacheMetrics
	var referenceCacheMetrics referenceService.CacheMetrics
	if cacheMetrics != nil {
		bookingsCacheMetrics = cacheMetrics
		referenceCacheMetrics = cacheMetrics
	}

	bookingSvc := bookingsService.New(cmsClient, bookingsCache, bookingsCacheMetrics, log)
	referenceSvc := referenceService.New(cmsClient, referenceCache, referenceCacheMetrics, log)

	// Отложенный сброс кеша статистики после отправок
	statsInvalidator := debounce.New(statsInvalidateDelay, bookingSvc.InvalidateStats)
	defer statsInvalidator.Stop()

	// Use cases
	submitUseCase := submitBookingUC.NewUseCase(formSvc, cmsClient, statsInvalidator, log)
	calendarUseCase := getCalendarUC.NewUseCase(cmsClient, log)

	// Handlers
	login := loginHandler.NewHandler(cmsClient, cfg.Session.CookieName, cfg.Session.MaxAge, cfg.Session.Secure, log)
	logout := logoutHandler.NewHandler(cmsClient, cfg.Session.CookieName, cfg.Session.Secure, log)
	getAcademies := getAcademiesHandler.NewHandler(referenceSvc, log)
	getMasterData := getMasterDataHandler.NewHandler(referenceSvc, log)
	createFormSession := createFormSessionHandler.NewHandler(formSvc, log)
	getFormSession := getFormSessionHandler.NewHandler(formSvc, log)
	updateFormSession := updateFormSessionHandler.NewHandler(formSvc, log)
	addSessionPlan := addSessionPlanHandler.NewHandler(formSvc, log)
	removeSessionPlan := removeSessionPlanHandler.NewHandler(formSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
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

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют session cookie)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Session.CookieName))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	protected.HandleFunc("/academies", getAcademies.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/master-data", getMasterData.Handle).Methods(http.MethodGet)

	// --- Сессии формы бронирования ---
	protected.HandleFunc("/form-sessions", createFormSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/form-sessions/{formId}", getFormSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/form-sessions/{formId}/fields", updateFormSession.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/form-sessions/{formId}/plans", addSessionPlan.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/form-sessions/{formId}/plans/{entryId}", removeSessionPlan.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/form-sessions/{formId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// stats регистрируется раньше, чтобы не попадать в {bookingId}
	protected.HandleFunc("/bookings/stats", getBookingStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

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
