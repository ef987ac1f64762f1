package service

import (
	"context"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
)

type AuthService interface {
	// Login matches the admin record or an existing user by trivial credential
	// equality; an unseen email auto-provisions a user record.
	Login(ctx context.Context, email, password, name string) (*LoginResult, error)
}

type CatalogService interface {
	CreateTool(ctx context.Context, input ToolInput) (*domain.Tool, error)
	UpdateTool(ctx context.Context, id string, input ToolInput) (*domain.Tool, error)
	DeleteTool(ctx context.Context, id string) error
	GetTool(ctx context.Context, id string) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	SetBeforeImage(ctx context.Context, toolID, imageRef string) error
}

type RentalService interface {
	RentTool(ctx context.Context, userID int, toolID string, rentDays int) (*domain.Rental, error)
	ListRentals(ctx context.Context, userID int, includeAll bool) ([]RentalView, error)
}

type ReturnService interface {
	// ProcessReturn runs the whole verification pipeline for one return
	// request and commits the resulting state as a unit.
	ProcessReturn(ctx context.Context, req ReturnRequest) (*ReturnResult, error)
}

type AuditService interface {
	ListLogs(ctx context.Context) ([]domain.LogEntry, error)
	Resolve(ctx context.Context, logID int, action domain.ResolveAction) (*ResolveResult, error)
}

type EmailService interface {
	SendReviewAlert(ctx context.Context, entry domain.LogEntry, toolName string) error
	SendOverdueSummary(ctx context.Context, rentals []RentalView) error
}

// LoginResult carries the issued token and the authenticated identity.
type LoginResult struct {
	Token string          `json:"token"`
	ID    int             `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
}

// ToolInput is the caller-provided portion of a tool record.
type ToolInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Specs       string  `json:"specs"`
}

// RentalView is a rental joined with its tool name for display. Deleted tools
// resolve to "Unknown Tool".
type RentalView struct {
	domain.Rental
	ToolName string `json:"tool_name"`
}

// ReturnRequest describes one submitted return. ImageKey addresses the
// already-stored upload in the after-images bucket.
type ReturnRequest struct {
	RentalID string
	ToolID   string
	UserID   int
	ImageKey string
	FileName string
	FileSize int64
}

// ReturnResult reports a completed pipeline run.
type ReturnResult struct {
	Rental       domain.Rental             `json:"rental"`
	Log          domain.LogEntry           `json:"log"`
	Authenticity scorer.AuthenticityResult `json:"authenticity"`
	Similarity   scorer.SimilarityResult   `json:"similarity"`
}

// ResolveResult reports an audit resolution. ToolUpdated is false when the
// tool no longer exists; the log is still marked resolved.
type ResolveResult struct {
	Log         domain.LogEntry `json:"log"`
	ToolUpdated bool            `json:"tool_updated"`
	Message     string          `json:"message"`
}
