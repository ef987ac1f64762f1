// Package storage keeps uploaded tool images on the local filesystem in two
// buckets: "before" condition photos keyed by tool ID and "after" return
// photos keyed by {userID}_{toolID}_return_{timestamp}.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	BucketBefore = "before"
	BucketAfter  = "after"
)

// ImageStore addresses plain byte blobs by bucket and filename.
type ImageStore struct {
	beforeDir string
	afterDir  string
}

// NewImageStore creates the bucket directories under uploadDir if needed.
func NewImageStore(uploadDir string) (*ImageStore, error) {
	beforeDir := filepath.Join(uploadDir, BucketBefore)
	afterDir := filepath.Join(uploadDir, BucketAfter)

	if err := os.MkdirAll(beforeDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create before-images directory: %w", err)
	}
	if err := os.MkdirAll(afterDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create after-images directory: %w", err)
	}

	return &ImageStore{beforeDir: beforeDir, afterDir: afterDir}, nil
}

// BeforeKey returns the storage key for a tool's reference photo.
func BeforeKey(toolID, ext string) string {
	return toolID + ext
}

// AfterKey returns the storage key for a submitted return photo.
func AfterKey(userID int, toolID string, now time.Time, ext string) string {
	return fmt.Sprintf("%d_%s_return_%d%s", userID, toolID, now.Unix(), ext)
}

// Save writes the blob into the bucket and returns its key.
func (s *ImageStore) Save(bucket, key string, r io.Reader) (string, error) {
	fullPath, err := s.resolve(bucket, key)
	if err != nil {
		return "", err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return key, nil
}

// Open returns a reader over the stored blob.
func (s *ImageStore) Open(bucket, key string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(bucket, key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return file, nil
}

// Delete removes the blob. Deleting a missing blob is not an error.
func (s *ImageStore) Delete(bucket, key string) error {
	fullPath, err := s.resolve(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}

// Exists reports whether the blob is present and its size in bytes.
func (s *ImageStore) Exists(bucket, key string) (bool, int64, error) {
	fullPath, err := s.resolve(bucket, key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// Path returns the filesystem path for a stored blob.
func (s *ImageStore) Path(bucket, key string) (string, error) {
	return s.resolve(bucket, key)
}

// ListAfter returns the keys and modification times of every blob in the
// after bucket, for the orphan sweep job.
func (s *ImageStore) ListAfter() (map[string]time.Time, error) {
	entries, err := os.ReadDir(s.afterDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list after-images: %w", err)
	}
	out := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out[e.Name()] = info.ModTime()
	}
	return out, nil
}

func (s *ImageStore) resolve(bucket, key string) (string, error) {
	var dir string
	switch bucket {
	case BucketBefore:
		dir = s.beforeDir
	case BucketAfter:
		dir = s.afterDir
	default:
		return "", fmt.Errorf("unknown image bucket: %q", bucket)
	}
	// Keys are plain filenames; reject anything that escapes the bucket.
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid image key: %q", key)
	}
	return filepath.Join(dir, key), nil
}
