package scorer

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

// Internal 0-1 scale thresholds for the authenticity judgment.
const (
	syntheticThreshold   = 0.7
	blockConfidenceFloor = 80.0 // only confident synthetic judgments block the upload
	confidenceCap        = 98.0
	similarityThreshold  = 0.6
)

// Filename keywords associated with generative-image tools.
var syntheticKeywords = []string{
	"ai", "generated", "midjourney", "dalle", "dall-e", "stablediffusion",
	"diffusion", "synthetic", "render", "gpt", "flux",
}

// HeuristicAuthenticity scores images from cheap signals: a file-size bucket,
// a filename keyword match, and a container-format bias, perturbed by a
// bounded random component so no single signal dominates.
type HeuristicAuthenticity struct {
	randFn func() float64
}

func NewHeuristicAuthenticity() *HeuristicAuthenticity {
	return &HeuristicAuthenticity{randFn: rand.Float64}
}

// NewHeuristicAuthenticityWithRand allows a deterministic random source.
func NewHeuristicAuthenticityWithRand(randFn func() float64) *HeuristicAuthenticity {
	return &HeuristicAuthenticity{randFn: randFn}
}

func (h *HeuristicAuthenticity) Score(ctx context.Context, path, fileName string, fileSize int64) (AuthenticityResult, error) {
	logger.ScorerCall("authenticity", "score", "file_name", fileName, "file_size", fileSize)

	score := 0.15

	// File-size bucket: very small files are typical of generator output,
	// very large ones of raw camera captures.
	switch {
	case fileSize > 0 && fileSize < 100*1024:
		score += 0.20
	case fileSize > 8*1024*1024:
		score += 0.02
	default:
		score += 0.08
	}

	lower := strings.ToLower(fileName)
	for _, kw := range syntheticKeywords {
		if strings.Contains(lower, kw) {
			score += 0.40
			break
		}
	}

	// Container-format bias: generators default to PNG/WebP output.
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png", ".webp":
		score += 0.10
	}

	// Bounded perturbation, placeholder for a real classifier.
	score += h.randFn() * 0.25
	if score > 1 {
		score = 1
	}

	confidence := score * 100
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	isSynthetic := score > syntheticThreshold

	// Independently random companion damage judgment.
	damageDetected := h.randFn() < 0.3
	var damageConfidence float64
	if damageDetected {
		damageConfidence = 70 + h.randFn()*25
	} else {
		damageConfidence = 5 + h.randFn()*25
	}

	res := AuthenticityResult{
		IsSynthetic:      isSynthetic,
		Confidence:       confidence,
		AllowUpload:      !(isSynthetic && confidence >= blockConfidenceFloor),
		DamageDetected:   damageDetected,
		DamageConfidence: damageConfidence,
	}

	logger.ScorerResult("authenticity", "score", nil,
		"is_synthetic", res.IsSynthetic, "confidence", res.Confidence, "allow_upload", res.AllowUpload)
	return res, nil
}

// HeuristicSimilarity combines a size-ratio heuristic with a bounded random
// baseline, weighted 20/80 toward the baseline.
type HeuristicSimilarity struct {
	randFn func() float64
}

func NewHeuristicSimilarity() *HeuristicSimilarity {
	return &HeuristicSimilarity{randFn: rand.Float64}
}

// NewHeuristicSimilarityWithRand allows a deterministic random source.
func NewHeuristicSimilarityWithRand(randFn func() float64) *HeuristicSimilarity {
	return &HeuristicSimilarity{randFn: randFn}
}

func (h *HeuristicSimilarity) Compare(ctx context.Context, referencePath, candidatePath string) (SimilarityResult, error) {
	logger.ScorerCall("similarity", "compare", "reference", referencePath, "candidate", candidatePath)

	refInfo, err := os.Stat(referencePath)
	if err != nil {
		logger.ScorerResult("similarity", "compare", err)
		return SimilarityResult{}, err
	}
	candInfo, err := os.Stat(candidatePath)
	if err != nil {
		logger.ScorerResult("similarity", "compare", err)
		return SimilarityResult{}, err
	}

	// Closer file sizes score higher.
	refSize, candSize := float64(refInfo.Size()), float64(candInfo.Size())
	sizeRatio := 0.0
	if refSize > 0 && candSize > 0 {
		if refSize < candSize {
			sizeRatio = refSize / candSize
		} else {
			sizeRatio = candSize / refSize
		}
	}

	combined := 0.2*sizeRatio + 0.8*h.randFn()

	res := SimilarityResult{
		Similar: combined > similarityThreshold,
		Score:   combined * 100,
	}

	logger.ScorerResult("similarity", "compare", nil, "similar", res.Similar, "score", res.Score)
	return res, nil
}
