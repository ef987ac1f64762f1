package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
)

// seedLoggedReturn writes a tool and a flagged log entry directly into the
// document, sidestepping the pipeline.
func seedLoggedReturn(t *testing.T, store *docstore.FileStore, quantity, available int) {
	t.Helper()
	err := store.Update(context.Background(), func(doc *domain.Document) error {
		doc.Tools = append(doc.Tools, domain.Tool{
			ID: "sander", Name: "Sander", Price: 8,
			Quantity: quantity, Rented: 0, Available: available,
		})
		doc.Logs = append(doc.Logs, domain.LogEntry{
			ID:     doc.NextLogID(),
			ToolID: "sander",
			Status: domain.LogStatusReviewRequired,
			Action: domain.LogActionAutoResolved,
		})
		return nil
	})
	require.NoError(t, err)
}

func TestResolveRemoveRetiresUnit(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)
	ctx := context.Background()
	seedLoggedReturn(t, store, 1, 1)

	result, err := svc.Resolve(ctx, 1, domain.ResolveActionRemove)
	require.NoError(t, err)
	assert.True(t, result.ToolUpdated)
	assert.Equal(t, domain.LogActionResolved, result.Log.Action)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	tool := doc.FindTool("sander")
	require.NotNil(t, tool)
	assert.Equal(t, 0, tool.Quantity)
	assert.Equal(t, 0, tool.Available)
}

func TestResolveRemoveAtZeroQuantity(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)
	ctx := context.Background()
	seedLoggedReturn(t, store, 0, 0)

	_, err := svc.Resolve(ctx, 1, domain.ResolveActionRemove)
	require.NoError(t, err)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.FindTool("sander").Quantity)
	assert.Equal(t, 0, doc.FindTool("sander").Available)
}

func TestResolveRepairedIncrementsAvailable(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)
	ctx := context.Background()
	seedLoggedReturn(t, store, 1, 1)

	for _, action := range []domain.ResolveAction{
		domain.ResolveActionRepaired,
		domain.ResolveActionMakeAvailable,
	} {
		_, err := svc.Resolve(ctx, 1, action)
		require.NoError(t, err)
	}

	// The increment is intentionally uncapped, so repeated resolutions can
	// push available past quantity.
	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.FindTool("sander").Available)
	assert.Equal(t, 1, doc.FindTool("sander").Quantity)
}

func TestResolveWithMissingTool(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)
	ctx := context.Background()

	err := store.Update(ctx, func(doc *domain.Document) error {
		doc.Logs = append(doc.Logs, domain.LogEntry{ID: 1, ToolID: "gone"})
		return nil
	})
	require.NoError(t, err)

	result, err := svc.Resolve(ctx, 1, domain.ResolveActionRepaired)
	require.NoError(t, err)
	assert.False(t, result.ToolUpdated)
	assert.Equal(t, "Log resolved, but the tool no longer exists", result.Message)
	assert.Equal(t, domain.LogActionResolved, result.Log.Action)
}

func TestResolveRejectsUnknownAction(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)

	_, err := svc.Resolve(context.Background(), 1, domain.ResolveAction("Shred"))
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestResolveLogNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)

	_, err := svc.Resolve(context.Background(), 42, domain.ResolveActionRepaired)
	assert.ErrorIs(t, err, errs.ErrLogNotFound)
}

func TestListLogs(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuditService(store)
	ctx := context.Background()
	seedLoggedReturn(t, store, 1, 1)

	logs, err := svc.ListLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "sander", logs[0].ToolID)
}
