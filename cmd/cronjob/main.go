package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/janellefernandes2005/tool-rental-system/internal/config"
	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/jobs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/scheduler"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-orphan-uploads', 'flag-overdue-rentals', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting maintenance job runner...", "log_level", cfg.Log.Level)

	// Initialize document store
	store, err := docstore.NewFileStore(cfg.Store.Path, domain.Admin{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	// Initialize image storage
	images, err := storage.NewImageStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	emailSvc := service.NewSendGridService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.AdminEmail)
	jobRunner := jobs.NewJobRunner(store, images, emailSvc, cfg)

	// One-shot execution
	if *runOnce != "" {
		switch *runOnce {
		case "sweep-orphan-uploads":
			jobRunner.SweepOrphanUploads()
		case "flag-overdue-rentals":
			jobRunner.FlagOverdueRentals()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Job run complete", "job", *runOnce)
		return
	}

	// Scheduled execution
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	logger.Info("Scheduler running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
	logger.Info("Scheduler stopped")
}
