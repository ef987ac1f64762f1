// Package docstore owns the durable persistence of the application document.
// The whole catalog/rental/user/log state is one versioned JSON document; every
// save rewrites it completely via an atomic temp-file-and-rename so the
// canonical file is always either the old complete version or the new one.
package docstore

import (
	"context"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
)

// Store loads and saves the application document. Update serializes a full
// load-mutate-save cycle; concurrent callers are queued behind a single writer
// so no update is silently lost.
type Store interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
	Update(ctx context.Context, mutate func(doc *domain.Document) error) error

	// Writes reports the number of successful saves since process start.
	// In-memory only, resets on restart.
	Writes() int64
}
