package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

// Pipeline stages, strictly sequential. Any failing stage aborts the whole
// operation and the uploaded file is removed.
const (
	StageUploadReceived    = "UPLOAD_RECEIVED"
	StageAuthenticityCheck = "AUTHENTICITY_CHECK"
	StageSimilarityCheck   = "SIMILARITY_CHECK"
	StageRentalLookup      = "RENTAL_LOOKUP"
	StageStateCommit       = "STATE_COMMIT"
	StageLogCommit         = "LOG_COMMIT"
	StageDone              = "DONE"
)

// Similarity scores below this floor abort the pipeline even when the scorer
// judged the pair similar.
const similarityScoreFloor = 60.0

// Authenticity confidence above this marks the resulting log for admin review.
const reviewConfidenceFloor = 70.0

type returnService struct {
	store     docstore.Store
	images    *storage.ImageStore
	authCheck scorer.AuthenticityScorer
	simCheck  scorer.SimilarityScorer
	email     EmailService
	randFn    func() float64
}

func NewReturnService(
	store docstore.Store,
	images *storage.ImageStore,
	authCheck scorer.AuthenticityScorer,
	simCheck scorer.SimilarityScorer,
	email EmailService,
) ReturnService {
	return &returnService{
		store:     store,
		images:    images,
		authCheck: authCheck,
		simCheck:  simCheck,
		email:     email,
		randFn:    rand.Float64,
	}
}

func (s *returnService) ProcessReturn(ctx context.Context, req ReturnRequest) (result *ReturnResult, err error) {
	log := logger.WithService("return_pipeline")
	log.Info("Return pipeline started", "rental_id", req.RentalID, "tool_id", req.ToolID, "user_id", req.UserID)

	// The uploaded artifact must never be left orphaned after a failed run,
	// including a late-stage persistence failure.
	defer func() {
		if err != nil && req.ImageKey != "" {
			if delErr := s.images.Delete(storage.BucketAfter, req.ImageKey); delErr != nil {
				log.Warn("Failed to clean up rejected upload", "image_key", req.ImageKey, "error", delErr)
			}
		}
	}()

	var (
		authRes  scorer.AuthenticityResult
		simRes   scorer.SimilarityResult
		rental   domain.Rental
		entry    domain.LogEntry
		toolName string
	)

	// The scorers and every state mutation run inside one serialized
	// load-mutate-save cycle; an abort at any stage persists nothing.
	err = s.store.Update(ctx, func(doc *domain.Document) error {
		// UPLOAD_RECEIVED
		if req.ImageKey == "" {
			return errs.ErrNoImage
		}
		tool := doc.FindTool(req.ToolID)
		if tool == nil {
			return errs.ErrToolNotFound
		}
		toolName = tool.Name

		candidatePath, pathErr := s.images.Path(storage.BucketAfter, req.ImageKey)
		if pathErr != nil {
			return fmt.Errorf("%w: %v", errs.ErrValidation, pathErr)
		}

		// AUTHENTICITY_CHECK
		var scoreErr error
		authRes, scoreErr = s.authCheck.Score(ctx, candidatePath, req.FileName, req.FileSize)
		if scoreErr != nil {
			return fmt.Errorf("authenticity check failed: %w", scoreErr)
		}
		if !authRes.AllowUpload {
			log.Warn("Upload rejected as synthetic", "stage", StageAuthenticityCheck,
				"rental_id", req.RentalID, "confidence", authRes.Confidence)
			return errs.ErrSyntheticImage
		}

		// SIMILARITY_CHECK — only when a reference photo is on record;
		// otherwise treated as pass with similarity 0 in the log.
		if tool.BeforeImageRef != "" {
			referencePath, refErr := s.images.Path(storage.BucketBefore, tool.BeforeImageRef)
			if refErr == nil {
				var simErr error
				simRes, simErr = s.simCheck.Compare(ctx, referencePath, candidatePath)
				if simErr != nil {
					// Soft failure: score 0, not similar.
					log.Warn("Similarity comparison failed softly", "stage", StageSimilarityCheck, "error", simErr)
					simRes = scorer.SimilarityResult{}
				}
			}
			if !simRes.Similar || simRes.Score < similarityScoreFloor {
				log.Warn("Upload rejected as mismatched", "stage", StageSimilarityCheck,
					"rental_id", req.RentalID, "score", simRes.Score)
				return errs.ErrImageMismatch
			}
		}

		// RENTAL_LOOKUP
		rentalRec := doc.FindRental(req.RentalID)
		if rentalRec == nil {
			return errs.ErrRentalNotFound
		}
		if rentalRec.Status == domain.RentalStatusReturned {
			// A second attempt is a no-op error, never a double-decrement.
			return errs.ErrAlreadyReturned
		}

		// STATE_COMMIT
		now := time.Now().UTC().Format(time.RFC3339)
		rentalRec.Status = domain.RentalStatusReturned
		rentalRec.ReturnDate = &now
		rentalRec.AfterImageRef = req.ImageKey
		if tool.Rented > 0 {
			tool.Rented--
		}
		tool.Available++
		rental = *rentalRec

		// LOG_COMMIT
		damageScore := s.randFn() * 30
		if authRes.DamageDetected {
			damageScore = authRes.DamageConfidence
			if damageScore < 70 {
				damageScore = 70
			}
		}
		status := domain.LogStatusAvailable
		if authRes.Confidence > reviewConfidenceFloor {
			status = domain.LogStatusReviewRequired
		}
		entry = domain.LogEntry{
			ID:               doc.NextLogID(),
			ToolID:           tool.ID,
			UserID:           rentalRec.UserID,
			UserName:         rentalRec.UserName,
			RentalID:         rentalRec.ID,
			BeforeImageRef:   tool.BeforeImageRef,
			AfterImageRef:    req.ImageKey,
			DamageScore:      damageScore,
			AIDetected:       authRes.IsSynthetic,
			AIConfidence:     authRes.Confidence,
			DamageDetected:   authRes.DamageDetected,
			DamageConfidence: authRes.DamageConfidence,
			ImageSimilarity:  simRes.Score,
			Status:           status,
			Timestamp:        now,
			Action:           domain.LogActionAutoResolved,
		}
		doc.Logs = append(doc.Logs, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if entry.Status == domain.LogStatusReviewRequired {
		// Alert failures are logged by the email service, never surfaced.
		_ = s.email.SendReviewAlert(ctx, entry, toolName)
	}

	log.Info("Return pipeline completed", "stage", StageDone,
		"rental_id", rental.ID, "log_id", entry.ID, "status", entry.Status)
	return &ReturnResult{
		Rental:       rental,
		Log:          entry,
		Authenticity: authRes,
		Similarity:   simRes,
	}, nil
}
