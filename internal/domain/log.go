package domain

type LogAction string

const (
	LogActionAutoResolved LogAction = "AUTO-RESOLVED"
	LogActionResolved     LogAction = "RESOLVED"
)

// Admin remediation actions applied to a log entry. Repaired and MakeAvailable
// both release the unit back to inventory; Remove retires it.
type ResolveAction string

const (
	ResolveActionRepaired      ResolveAction = "Repaired"
	ResolveActionRemove        ResolveAction = "Remove"
	ResolveActionMakeAvailable ResolveAction = "MakeAvailable"
)

// Log entry statuses produced by the return pipeline.
const (
	LogStatusReviewRequired = "AI Detected - Review Required"
	LogStatusAvailable      = "Available"
)

// LogEntry records one completed return verification for the audit trail.
type LogEntry struct {
	ID               int       `json:"id"`
	ToolID           string    `json:"tool_id"`
	UserID           int       `json:"user_id"`
	UserName         string    `json:"user_name"`
	RentalID         string    `json:"rental_id"`
	BeforeImageRef   string    `json:"before_image_ref,omitempty"`
	AfterImageRef    string    `json:"after_image_ref,omitempty"`
	DamageScore      float64   `json:"damage_score"`
	AIDetected       bool      `json:"ai_detected"`
	AIConfidence     float64   `json:"ai_confidence"`
	DamageDetected   bool      `json:"damage_detected"`
	DamageConfidence float64   `json:"damage_confidence"`
	ImageSimilarity  float64   `json:"image_similarity"`
	Status           string    `json:"status"`
	Timestamp        string    `json:"timestamp"`
	Action           LogAction `json:"action"`
}
