package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/mkadiri/dentassist-api/config"
	"github.com/mkadiri/dentassist-api/internal/handler"
	appointmentHandler "github.com/mkadiri/dentassist-api/internal/handler/appointment"
	documentHandler "github.com/mkadiri/dentassist-api/internal/handler/document"
	medicationHandler "github.com/mkadiri/dentassist-api/internal/handler/medication"
	patientHandler "github.com/mkadiri/dentassist-api/internal/handler/patient"
	paymentHandler "github.com/mkadiri/dentassist-api/internal/handler/payment"
	settingsHandler "github.com/mkadiri/dentassist-api/internal/handler/settings"
	statsHandler "github.com/mkadiri/dentassist-api/internal/handler/stats"
	treatmentHandler "github.com/mkadiri/dentassist-api/internal/handler/treatment"
	"github.com/mkadiri/dentassist-api/internal/middleware"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/render"
	"github.com/mkadiri/dentassist-api/internal/repository/memory"
	"github.com/mkadiri/dentassist-api/internal/router"
	appointmentService "github.com/mkadiri/dentassist-api/internal/service/appointment"
	documentService "github.com/mkadiri/dentassist-api/internal/service/document"
	medicationService "github.com/mkadiri/dentassist-api/internal/service/medication"
	patientService "github.com/mkadiri/dentassist-api/internal/service/patient"
	paymentService "github.com/mkadiri/dentassist-api/internal/service/payment"
	settingsService "github.com/mkadiri/dentassist-api/internal/service/settings"
	statsService "github.com/mkadiri/dentassist-api/internal/service/stats"
	treatmentService "github.com/mkadiri/dentassist-api/internal/service/treatment"
	"github.com/mkadiri/dentassist-api/pkg/logger"
	"github.com/mkadiri/dentassist-api/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.InfoLevel,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.LogPretty,
	})

	if err := validator.Register(); err != nil {
		log.Fatal(err, "failed to register validation tags")
	}

	// Initialize repositories
	patientRepo := memory.NewPatientRepository()
	appointmentRepo := memory.NewAppointmentRepository()
	treatmentRepo := memory.NewTreatmentRepository()
	paymentRepo := memory.NewPaymentRepository()
	medicationRepo := memory.NewMedicationRepository()
	movementRepo := memory.NewStockMovementRepository()
	documentRepo := memory.NewDocumentRepository()
	settingsRepo := memory.NewSettingsRepository(model.Settings{
		Currency:       cfg.Clinic.Currency,
		CurrencySymbol: cfg.Clinic.CurrencySymbol,
		DocumentPrefix: model.DocumentPrefix{
			Invoice: cfg.Clinic.InvoicePrefix,
			Quote:   cfg.Clinic.QuotePrefix,
		},
		CompanyInfo: model.CompanyInfo{
			Name:    cfg.Clinic.Name,
			Address: cfg.Clinic.Address,
			Phone:   cfg.Clinic.Phone,
			Email:   cfg.Clinic.Email,
		},
	})

	// Initialize renderers
	renderer := render.NewRenderer(render.Config{
		TemplateDir: cfg.Documents.TemplateDir,
		CacheTTL:    cfg.Documents.CacheTTL,
	})
	pdfRenderer := render.NewPDFRenderer(cfg.Documents.FontPaths)

	// Initialize services
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo)
	medicationSvc := medicationService.NewService(medicationRepo, movementRepo)
	treatmentSvc := treatmentService.NewService(treatmentRepo, patientRepo, medicationSvc)
	paymentSvc := paymentService.NewService(paymentRepo, patientRepo, treatmentRepo)
	documentSvc := documentService.NewService(documentRepo, patientRepo, treatmentRepo, settingsRepo, renderer, pdfRenderer)
	settingsSvc := settingsService.NewService(settingsRepo)
	statsSvc := statsService.NewService(patientRepo, treatmentRepo, paymentRepo)

	// Initialize handlers
	h := handler.NewHandler()

	// Setup router
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.Security.AllowedOrigins

	limit := rate.Limit(cfg.RateLimit.RequestsPerSecond)
	if !cfg.RateLimit.Enabled {
		limit = rate.Inf
	}

	r := router.NewRouter(h, router.Config{
		RateLimit:      limit,
		RateBurst:      cfg.RateLimit.Burst,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSConfig:     corsCfg,
		MetricsPrefix:  cfg.Monitoring.MetricsPrefix,
	},
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		treatmentHandler.NewHandler(treatmentSvc),
		paymentHandler.NewHandler(paymentSvc),
		medicationHandler.NewHandler(medicationSvc),
		documentHandler.NewHandler(documentSvc),
		settingsHandler.NewHandler(settingsSvc),
		statsHandler.NewHandler(statsSvc),
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
