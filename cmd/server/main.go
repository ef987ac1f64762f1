package main

import (
	"flag"
	"log"
	"net/http"

	api "github.com/janellefernandes2005/tool-rental-system/internal/api/http"
	"github.com/janellefernandes2005/tool-rental-system/internal/config"
	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/jobs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/scheduler"
	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
	"github.com/janellefernandes2005/tool-rental-system/internal/security"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tool Rental System...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "path", cfg.Store.Path, "upload_dir", cfg.Storage.UploadDir)

	// Initialize document store
	store, err := docstore.NewFileStore(cfg.Store.Path, domain.Admin{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
	if err != nil {
		logger.Error("Failed to initialize document store", "error", err)
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	// Initialize image storage
	images, err := storage.NewImageStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Initialize scorers (heuristic placeholders behind stable interfaces)
	authScorer := scorer.NewHeuristicAuthenticity()
	simScorer := scorer.NewHeuristicSimilarity()

	// Initialize services
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	emailSvc := service.NewSendGridService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.AdminEmail)
	authSvc := service.NewAuthService(store, tokens)
	catalogSvc := service.NewCatalogService(store)
	rentalSvc := service.NewRentalService(store)
	returnSvc := service.NewReturnService(store, images, authScorer, simScorer, emailSvc)
	auditSvc := service.NewAuditService(store)

	// Start the scheduler
	jobRunner := jobs.NewJobRunner(store, images, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Wire the HTTP API
	router := api.NewRouter(api.RouterDeps{
		Auth:    authSvc,
		Catalog: catalogSvc,
		Rental:  rentalSvc,
		Return:  returnSvc,
		Audit:   auditSvc,
		Images:  images,
		Scorer:  authScorer,
		Tokens:  tokens,
		Limits: api.UploadLimits{
			MaxBytes:     cfg.Storage.MaxFileSize * 1024 * 1024,
			AllowedTypes: cfg.Storage.AllowedTypes,
		},
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
