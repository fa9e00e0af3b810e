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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_booking"
	createConsultationHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_consultation"
	createEmailLeadHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_email_lead"
	createPartnerHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_partner"
	createTestimonialHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_testimonial"
	createWaitlistEntryHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/create_waitlist_entry"
	deletePartnerHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/delete_partner"
	deleteTestimonialHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/delete_testimonial"
	getAvailabilityHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/get_availability"
	getBookingsByDateHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/get_bookings_by_date"
	getConsultationHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/get_consultation"
	listBookingsHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_bookings"
	listConsultationsHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_consultations"
	listEmailLeadsHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_email_leads"
	listPartnersHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_partners"
	listTestimonialsHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_testimonials"
	listWaitlistHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/list_waitlist"
	updatePartnerHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/update_partner"
	updateTestimonialHandler "github.com/travelbuff/TB-ConciergeService/internal/api/handlers/update_testimonial"
	"github.com/travelbuff/TB-ConciergeService/internal/api/middleware"
	"github.com/travelbuff/TB-ConciergeService/internal/config"
	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
	contentRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/content"
	mailerClient "github.com/travelbuff/TB-ConciergeService/internal/integrations/mailer"
	bookingsService "github.com/travelbuff/TB-ConciergeService/internal/service/bookings"
	contentService "github.com/travelbuff/TB-ConciergeService/internal/service/content"
	createBookingUC "github.com/travelbuff/TB-ConciergeService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/travelbuff/TB-ConciergeService/internal/usecase/get_availability"
	"github.com/travelbuff/TB-ConciergeService/pkg/logger"
	"github.com/travelbuff/TB-ConciergeService/pkg/metrics"
	"github.com/travelbuff/TB-ConciergeService/pkg/slotlock"
)

func main() {
	// .env не обязателен, переменные окружения могут приходить извне
	_ = godotenv.Load()

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

	log.Info("Starting TB-ConciergeService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс хранилища бронирований, общий для обоих драйверов
	type BookingStore interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetAll(ctx context.Context) ([]*domain.Booking, error)
		GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
	}
	var bookingRepository BookingStore

	// Выбираем хранилище бронирований
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepository = bookingRepo.NewPostgresRepository(db)
	default:
		bookingRepository = bookingRepo.NewMemoryRepository()
		log.Info("Using in-memory booking storage")
	}

	contentRepository := contentRepo.NewMemoryRepository()

	// Блокировки по ключу слота: сериализуют создание бронирований
	// на одну и ту же пару (дата, время)
	slotGuard := slotlock.New()

	// Почтовый клиент (при пустом API ключе отправка симулируется)
	mailer := mailerClient.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.APIKey,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		cfg.Mailer.SenderEmail,
		cfg.Mailer.SenderName,
		cfg.Mailer.NotificationEmail,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	contentSvc := contentService.NewService(contentRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotGuard,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		cfg.TimeSlotList(),
		log,
	)

	// Доменные метрики в handlers идут через интерфейсы,
	// при выключенных метриках интерфейсы остаются nil
	var bookingMetrics createBookingHandler.Metrics
	var notificationMetrics createConsultationHandler.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		notificationMetrics = metricsCollector
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, mailer, bookingMetrics, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBookingsByDate := getBookingsByDateHandler.NewHandler(bookingSvc, log)

	createConsultation := createConsultationHandler.NewHandler(contentSvc, mailer, notificationMetrics, log)
	listConsultations := listConsultationsHandler.NewHandler(contentSvc, log)
	getConsultation := getConsultationHandler.NewHandler(contentSvc, log)

	createEmailLead := createEmailLeadHandler.NewHandler(contentSvc, log)
	listEmailLeads := listEmailLeadsHandler.NewHandler(contentSvc, log)

	createWaitlistEntry := createWaitlistEntryHandler.NewHandler(contentSvc, log)
	listWaitlist := listWaitlistHandler.NewHandler(contentSvc, log)

	createPartner := createPartnerHandler.NewHandler(contentSvc, log)
	listPublicPartners := listPartnersHandler.NewHandler(contentSvc, true, log)
	listAllPartners := listPartnersHandler.NewHandler(contentSvc, false, log)
	updatePartner := updatePartnerHandler.NewHandler(contentSvc, log)
	deletePartner := deletePartnerHandler.NewHandler(contentSvc, log)

	createTestimonial := createTestimonialHandler.NewHandler(contentSvc, log)
	listPublicTestimonials := listTestimonialsHandler.NewHandler(contentSvc, true, log)
	listAllTestimonials := listTestimonialsHandler.NewHandler(contentSvc, false, log)
	updateTestimonial := updateTestimonialHandler.NewHandler(contentSvc, log)
	deleteTestimonial := deleteTestimonialHandler.NewHandler(contentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (формы сайта, без аутентификации)
	// ============================================================

	// Бронирование консультационного слота
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Доступность слотов на дату
	api.HandleFunc("/bookings/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Бронирования на дату (календарь фронтенда)
	api.HandleFunc("/bookings/date/{date}", getBookingsByDate.Handle).Methods(http.MethodGet)

	// Запрос на консультацию
	api.HandleFunc("/consultations", createConsultation.Handle).Methods(http.MethodPost)

	// Email-лид (формы захвата email)
	api.HandleFunc("/email-leads", createEmailLead.Handle).Methods(http.MethodPost)

	// Лист ожидания направления
	api.HandleFunc("/waitlist", createWaitlistEntry.Handle).Methods(http.MethodPost)

	// Публичные витрины
	api.HandleFunc("/partners", listPublicPartners.Handle).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", listPublicTestimonials.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (статический bearer token)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// --- Консультации ---
	admin.HandleFunc("/consultations", listConsultations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/consultations/{id}", getConsultation.Handle).Methods(http.MethodGet)

	// --- Лиды и лист ожидания ---
	admin.HandleFunc("/email-leads", listEmailLeads.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/waitlist", listWaitlist.Handle).Methods(http.MethodGet)

	// --- Партнеры ---
	admin.HandleFunc("/partners", createPartner.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/partners", listAllPartners.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/partners/{id}", updatePartner.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/partners/{id}", deletePartner.Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	admin.HandleFunc("/testimonials", createTestimonial.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/testimonials", listAllTestimonials.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials/{id}", updateTestimonial.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/testimonials/{id}", deleteTestimonial.Handle).Methods(http.MethodDelete)

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
