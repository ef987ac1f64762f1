// Package scorer holds the pluggable image scoring capability used by the
// return verification pipeline. The shipped implementations are cheap
// heuristics with a deliberate random component; a model-backed variant can
// replace them without touching the pipeline.
package scorer

import "context"

// AuthenticityResult is the judgment on a single uploaded image.
type AuthenticityResult struct {
	IsSynthetic bool    `json:"is_synthetic"`
	Confidence  float64 `json:"confidence"` // 0-100, capped at 98
	AllowUpload bool    `json:"allow_upload"`

	// Companion damage judgment produced by the same call and reused by the
	// pipeline when deriving the damage score.
	DamageDetected   bool    `json:"damage_detected"`
	DamageConfidence float64 `json:"damage_confidence"` // 0-100
}

// AuthenticityScorer judges whether an uploaded image is synthetic/generated.
type AuthenticityScorer interface {
	Score(ctx context.Context, path, fileName string, fileSize int64) (AuthenticityResult, error)
}

// SimilarityResult is the judgment on a reference/candidate image pair.
type SimilarityResult struct {
	Similar bool    `json:"similar"`
	Score   float64 `json:"score"` // 0-100
}

// SimilarityScorer judges whether two images depict the same physical item.
// Compare fails softly: when either image cannot be read it returns
// {Similar: false, Score: 0} together with the diagnostic error, and the
// caller decides how to proceed.
type SimilarityScorer interface {
	Compare(ctx context.Context, referencePath, candidatePath string) (SimilarityResult, error)
}
