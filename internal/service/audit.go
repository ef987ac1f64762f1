package service

import (
	"context"
	"fmt"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

type auditService struct {
	store docstore.Store
}

func NewAuditService(store docstore.Store) AuditService {
	return &auditService{store: store}
}

func (s *auditService) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Logs, nil
}

// Resolve applies an admin remediation action to a log entry's tool and marks
// the entry RESOLVED. Repaired and MakeAvailable increment available without
// capping at quantity; Remove retires one unit and clamps available down to
// the new quantity. A missing tool still gets the entry marked RESOLVED.
func (s *auditService) Resolve(ctx context.Context, logID int, action domain.ResolveAction) (*ResolveResult, error) {
	switch action {
	case domain.ResolveActionRepaired, domain.ResolveActionRemove, domain.ResolveActionMakeAvailable:
	default:
		return nil, fmt.Errorf("%w: unknown resolve action %q", errs.ErrValidation, action)
	}

	var result ResolveResult
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		entry := doc.FindLog(logID)
		if entry == nil {
			return errs.ErrLogNotFound
		}

		tool := doc.FindTool(entry.ToolID)
		if tool != nil {
			switch action {
			case domain.ResolveActionRepaired, domain.ResolveActionMakeAvailable:
				tool.Available++
			case domain.ResolveActionRemove:
				if tool.Quantity > 0 {
					tool.Quantity--
				}
				if tool.Available > tool.Quantity {
					tool.Available = tool.Quantity
				}
			}
			result.ToolUpdated = true
			result.Message = fmt.Sprintf("Log resolved with action %s", action)
		} else {
			result.Message = "Log resolved, but the tool no longer exists"
		}

		entry.Action = domain.LogActionResolved
		result.Log = *entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Audit log resolved", "log_id", logID, "action", action, "tool_updated", result.ToolUpdated)
	return &result, nil
}
