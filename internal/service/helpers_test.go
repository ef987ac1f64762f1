package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janellefernandes2005/tool-rental-system/internal/docstore"
	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

var testAdmin = domain.Admin{Email: "admin@example.com", Password: "secret", Name: "Admin"}

func newTestStore(t *testing.T) *docstore.FileStore {
	t.Helper()
	store, err := docstore.NewFileStore(filepath.Join(t.TempDir(), "data.json"), testAdmin)
	require.NoError(t, err)
	return store
}

func newTestImages(t *testing.T) *storage.ImageStore {
	t.Helper()
	images, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)
	return images
}
