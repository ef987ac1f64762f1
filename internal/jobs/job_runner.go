package jobs

import (
	"github.com/janellefernandes2005/tool-rental-system/internal/config"
	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	store  docstore.Store
	images *storage.ImageStore
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store docstore.Store, images *storage.ImageStore, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		images: images,
		email:  email,
		config: cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName, "store_writes", jr.store.Writes())
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SweepOrphanUploads()
	jr.FlagOverdueRentals()
}
