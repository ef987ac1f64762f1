package scorer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the given values in sequence, then repeats the last one.
func fixedRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestAuthenticityBlocksConfidentSynthetic(t *testing.T) {
	// Keyword + small png + max perturbation pushes well past both thresholds.
	h := NewHeuristicAuthenticityWithRand(fixedRand(1.0))
	res, err := h.Score(context.Background(), "", "midjourney-output.png", 40*1024)
	require.NoError(t, err)

	assert.True(t, res.IsSynthetic)
	assert.GreaterOrEqual(t, res.Confidence, blockConfidenceFloor)
	assert.False(t, res.AllowUpload)
	assert.LessOrEqual(t, res.Confidence, confidenceCap)
}

func TestAuthenticityAllowsOrdinaryPhoto(t *testing.T) {
	h := NewHeuristicAuthenticityWithRand(fixedRand(0.0))
	res, err := h.Score(context.Background(), "", "IMG_4821.jpg", 3*1024*1024)
	require.NoError(t, err)

	assert.False(t, res.IsSynthetic)
	assert.True(t, res.AllowUpload)
}

func TestAuthenticityBorderlineSyntheticStillAllowed(t *testing.T) {
	// score = 0.15 + 0.08 + 0.40 (keyword) + 0.25*0.52 = 0.76 → synthetic,
	// confidence 76 < 80 → allowed through.
	h := NewHeuristicAuthenticityWithRand(fixedRand(0.52, 0.9, 0.5))
	res, err := h.Score(context.Background(), "", "ai-photo.jpeg", 1024*1024)
	require.NoError(t, err)

	assert.True(t, res.IsSynthetic)
	assert.Less(t, res.Confidence, blockConfidenceFloor)
	assert.True(t, res.AllowUpload)
}

func TestAuthenticityConfidenceCapped(t *testing.T) {
	h := NewHeuristicAuthenticityWithRand(fixedRand(1.0))
	res, err := h.Score(context.Background(), "", "dalle-generated-render.png", 10*1024)
	require.NoError(t, err)
	assert.Equal(t, confidenceCap, res.Confidence)
}

func TestAuthenticityDamageBands(t *testing.T) {
	// Damage draw below 0.3 flags damage with confidence in the high band.
	h := NewHeuristicAuthenticityWithRand(fixedRand(0.0))
	res, err := h.Score(context.Background(), "", "a.jpg", 1024)
	require.NoError(t, err)
	assert.True(t, res.DamageDetected)
	assert.GreaterOrEqual(t, res.DamageConfidence, 70.0)
	assert.LessOrEqual(t, res.DamageConfidence, 95.0)

	// Draw above 0.3 means no damage and a low-band confidence.
	h = NewHeuristicAuthenticityWithRand(fixedRand(0.0, 0.9, 0.5))
	res, err = h.Score(context.Background(), "", "a.jpg", 1024)
	require.NoError(t, err)
	assert.False(t, res.DamageDetected)
	assert.GreaterOrEqual(t, res.DamageConfidence, 5.0)
	assert.LessOrEqual(t, res.DamageConfidence, 30.0)
}

func TestSimilarityFailsSoftlyOnMissingFile(t *testing.T) {
	h := NewHeuristicSimilarityWithRand(fixedRand(1.0))
	res, err := h.Compare(context.Background(), "/nonexistent/ref.jpg", "/nonexistent/cand.jpg")
	assert.Error(t, err)
	assert.False(t, res.Similar)
	assert.Zero(t, res.Score)
}

func TestSimilarityWeighting(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.jpg")
	cand := filepath.Join(dir, "cand.jpg")
	require.NoError(t, os.WriteFile(ref, make([]byte, 1000), 0o644))
	require.NoError(t, os.WriteFile(cand, make([]byte, 1000), 0o644))

	// Identical sizes: combined = 0.2*1.0 + 0.8*rand.
	h := NewHeuristicSimilarityWithRand(fixedRand(0.75))
	res, err := h.Compare(context.Background(), ref, cand)
	require.NoError(t, err)
	assert.True(t, res.Similar)
	assert.InDelta(t, 80.0, res.Score, 0.001)

	// Low baseline draw fails the threshold even with identical sizes.
	h = NewHeuristicSimilarityWithRand(fixedRand(0.1))
	res, err = h.Compare(context.Background(), ref, cand)
	require.NoError(t, err)
	assert.False(t, res.Similar)
	assert.InDelta(t, 28.0, res.Score, 0.001)
}
