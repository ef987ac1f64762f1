package jobs

import (
	"context"
	"time"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

// SweepOrphanUploads deletes after-images that no rental or log references
// and that are older than the configured cutoff. Pipeline aborts already
// clean up after themselves; this catches anything a crash left behind.
func (jr *JobRunner) SweepOrphanUploads() {
	jr.runWithRecovery("sweep_orphan_uploads", func() {
		ctx := context.Background()

		doc, err := jr.store.Load(ctx)
		if err != nil {
			logger.Error("Orphan sweep could not load document", "error", err)
			return
		}

		referenced := make(map[string]bool)
		for _, r := range doc.Rentals {
			if r.AfterImageRef != "" {
				referenced[r.AfterImageRef] = true
			}
		}
		for _, l := range doc.Logs {
			if l.AfterImageRef != "" {
				referenced[l.AfterImageRef] = true
			}
		}

		files, err := jr.images.ListAfter()
		if err != nil {
			logger.Error("Orphan sweep could not list uploads", "error", err)
			return
		}

		cutoff := time.Now().Add(-time.Duration(jr.config.Scheduler.OrphanUploadMaxAgeHr) * time.Hour)
		removed := 0
		for key, modTime := range files {
			if referenced[key] || modTime.After(cutoff) {
				continue
			}
			if err := jr.images.Delete(storage.BucketAfter, key); err != nil {
				logger.Warn("Orphan sweep failed to delete upload", "key", key, "error", err)
				continue
			}
			removed++
		}
		logger.Info("Orphan sweep finished", "scanned", len(files), "removed", removed)
	})
}

// FlagOverdueRentals logs every open rental whose rental period has elapsed
// and emails the admin a summary.
func (jr *JobRunner) FlagOverdueRentals() {
	jr.runWithRecovery("flag_overdue_rentals", func() {
		ctx := context.Background()

		doc, err := jr.store.Load(ctx)
		if err != nil {
			logger.Error("Overdue flagging could not load document", "error", err)
			return
		}

		now := time.Now().UTC()
		var overdue []service.RentalView
		for _, r := range doc.Rentals {
			if r.Status != domain.RentalStatusRented {
				continue
			}
			rentedOn, err := time.Parse(time.RFC3339, r.RentalDate)
			if err != nil {
				continue
			}
			due := rentedOn.AddDate(0, 0, r.RentDays)
			if !now.After(due) {
				continue
			}

			name := "Unknown Tool"
			if tool := doc.FindTool(r.ToolID); tool != nil {
				name = tool.Name
			}
			logger.Warn("Rental overdue", "rental_id", r.ID, "tool", name,
				"user", r.UserName, "due", due.Format(time.RFC3339))
			overdue = append(overdue, service.RentalView{Rental: r, ToolName: name})
		}

		if len(overdue) > 0 {
			_ = jr.email.SendOverdueSummary(ctx, overdue)
		}
		logger.Info("Overdue flagging finished", "overdue", len(overdue))
	})
}
