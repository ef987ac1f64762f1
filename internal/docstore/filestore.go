package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

// FileStore persists the document as one JSON file. All load-mutate-save
// cycles are serialized under a single mutex.
type FileStore struct {
	path       string
	seedAdmin  domain.Admin
	mu         sync.Mutex
	writeCount atomic.Int64
}

// NewFileStore creates a store backed by the JSON file at path. The admin
// record seeds the default document written on first load when no file exists.
func NewFileStore(path string, seedAdmin domain.Admin) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create store directory: %v", errs.ErrStoreUnavailable, err)
	}
	return &FileStore{path: path, seedAdmin: seedAdmin}, nil
}

// Load returns the current document. A missing backing file triggers exactly
// one initialization save of the default document. Malformed content is
// replaced by an empty-but-valid document and logged, never propagated.
func (s *FileStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Save durably replaces the document on disk.
func (s *FileStore) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, doc)
}

// Update runs one serialized load-mutate-save cycle. If mutate returns an
// error nothing is written and the in-memory document is discarded.
func (s *FileStore) Update(ctx context.Context, mutate func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.saveLocked(ctx, doc)
}

// Writes reports the number of successful saves since process start.
func (s *FileStore) Writes() int64 {
	return s.writeCount.Load()
}

func (s *FileStore) loadLocked(ctx context.Context) (*domain.Document, error) {
	logger.StoreCall("load", "path", s.path)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// First run: initialize once with the default document.
		doc := domain.NewDocument(s.seedAdmin)
		if err := s.saveLocked(ctx, doc); err != nil {
			logger.StoreResult("load", err)
			return nil, err
		}
		logger.Info("Initialized new document store", "path", s.path)
		return doc, nil
	}
	if err != nil {
		err = fmt.Errorf("%w: failed to read document: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("load", err)
		return nil, err
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Reads degrade to an empty document rather than crashing the process.
		logger.Warn("Document file is malformed, substituting empty document", "path", s.path, "error", err)
		doc = *domain.NewDocument(s.seedAdmin)
	}
	normalize(&doc)

	logger.StoreResult("load", nil, "version", doc.Version)
	return &doc, nil
}

func (s *FileStore) saveLocked(ctx context.Context, doc *domain.Document) error {
	logger.StoreCall("save", "path", s.path, "version", doc.Version+1)

	doc.Version++

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		doc.Version--
		err = fmt.Errorf("%w: failed to serialize document: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}

	// Serialize to a temporary sibling, then atomically rename over the
	// canonical path. A crash mid-write leaves the old file intact.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		doc.Version--
		err = fmt.Errorf("%w: failed to create temp file: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		doc.Version--
		err = fmt.Errorf("%w: failed to write temp file: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		doc.Version--
		err = fmt.Errorf("%w: failed to sync temp file: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		doc.Version--
		err = fmt.Errorf("%w: failed to close temp file: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		doc.Version--
		err = fmt.Errorf("%w: failed to replace document: %v", errs.ErrStoreUnavailable, err)
		logger.StoreResult("save", err)
		return err
	}

	s.writeCount.Add(1)
	logger.StoreResult("save", nil, "version", doc.Version)
	return nil
}

// normalize repairs nil slices left by older or hand-edited document files so
// callers can append without nil checks and saves round-trip as [].
func normalize(doc *domain.Document) {
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	if doc.Tools == nil {
		doc.Tools = []domain.Tool{}
	}
	if doc.Rentals == nil {
		doc.Rentals = []domain.Rental{}
	}
	if doc.Logs == nil {
		doc.Logs = []domain.LogEntry{}
	}
}
