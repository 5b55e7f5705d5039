package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	askAssistantHandler "github.com/labcentral/facility-service/internal/api/handlers/ask_assistant"
	createBookingHandler "github.com/labcentral/facility-service/internal/api/handlers/create_booking"
	decideBookingHandler "github.com/labcentral/facility-service/internal/api/handlers/decide_booking"
	exportReportHandler "github.com/labcentral/facility-service/internal/api/handlers/export_report"
	getBannerHandler "github.com/labcentral/facility-service/internal/api/handlers/get_banner"
	getEquipmentHandler "github.com/labcentral/facility-service/internal/api/handlers/get_equipment"
	listBookingsHandler "github.com/labcentral/facility-service/internal/api/handlers/list_bookings"
	listEquipmentHandler "github.com/labcentral/facility-service/internal/api/handlers/list_equipment"
	listNotificationsHandler "github.com/labcentral/facility-service/internal/api/handlers/list_notifications"
	"github.com/labcentral/facility-service/internal/api/middleware"
	"github.com/labcentral/facility-service/internal/config"
	"github.com/labcentral/facility-service/internal/domain"
	bookingRepo "github.com/labcentral/facility-service/internal/infra/storage/booking"
	equipmentRepo "github.com/labcentral/facility-service/internal/infra/storage/equipment"
	notificationRepo "github.com/labcentral/facility-service/internal/infra/storage/notification"
	assistantClient "github.com/labcentral/facility-service/internal/integrations/assistant"
	availabilityService "github.com/labcentral/facility-service/internal/service/availability"
	bookingsService "github.com/labcentral/facility-service/internal/service/bookings"
	notificationsService "github.com/labcentral/facility-service/internal/service/notifications"
	overdueService "github.com/labcentral/facility-service/internal/service/overdue"
	createBookingUC "github.com/labcentral/facility-service/internal/usecase/create_booking"
	decideBookingUC "github.com/labcentral/facility-service/internal/usecase/decide_booking"
	exportReportUC "github.com/labcentral/facility-service/internal/usecase/export_report"
	"github.com/labcentral/facility-service/internal/worker"
	"github.com/labcentral/facility-service/pkg/logger"
	"github.com/labcentral/facility-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LabCentral facility service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// In-memory stores, seeded with the instrument catalog
	equipmentRepository := equipmentRepo.NewRepository()
	equipmentRepository.Seed(domain.DefaultCatalog())
	bookingRepository := bookingRepo.NewRepository()
	notificationRepository := notificationRepo.NewRepository()
	log.Info("Stores initialized, catalog seeded with %d instruments", len(domain.DefaultCatalog()))

	assistant := assistantClient.NewClient(
		cfg.Assistant.URL,
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.Timeout)*time.Second,
		log,
	)
	log.Info("Assistant client initialized (model=%s, timeout=%ds)", cfg.Assistant.Model, cfg.Assistant.Timeout)

	// Services
	gateway := notificationsService.NewService(
		notificationRepository,
		cfg.Gateway.DeliveryDelay(),
		cfg.Gateway.BannerTimeout(),
		metricsCollector,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		equipmentRepository,
		bookingRepository,
		metricsCollector,
		log,
	)
	overdueSvc := overdueService.NewService(
		bookingRepository,
		equipmentRepository,
		gateway,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		equipmentRepository,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		equipmentRepository,
		gateway,
		log,
	)
	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		equipmentRepository,
		gateway,
		log,
	)
	exportReportUseCase := exportReportUC.NewUseCase(
		bookingRepository,
		equipmentRepository,
		log,
	)

	// Handlers
	listEquipment := listEquipmentHandler.NewHandler(equipmentRepository, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentRepository, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	listNotifications := listNotificationsHandler.NewHandler(gateway, log)
	getBanner := getBannerHandler.NewHandler(gateway, log)
	exportReport := exportReportHandler.NewHandler(exportReportUseCase, log)
	askAssistant := askAssistantHandler.NewHandler(assistant, equipmentRepository, log)

	// Reconciliation engine
	engine := worker.NewEngine(
		availabilitySvc,
		overdueSvc,
		cfg.Engine.TickInterval(),
		metricsCollector,
		log,
	)
	engine.Start()
	log.Info("Reconciliation engine started (interval=%s)", cfg.Engine.TickInterval())

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}", getEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/banner", getBanner.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assistant/ask", askAssistant.Handle).Methods(http.MethodPost)

	// Admin routes (require X-User-Role: ADMIN)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)
	admin.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reports/bookings", exportReport.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	engine.Stop()
	log.Info("Reconciliation engine stopped")

	gateway.Stop()
	log.Info("Notification gateway stopped, pending deliveries cancelled")

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
