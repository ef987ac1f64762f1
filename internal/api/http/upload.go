package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
)

// UploadLimits bounds incoming image uploads.
type UploadLimits struct {
	MaxBytes     int64
	AllowedTypes []string
}

// formImage extracts the uploaded image from a multipart form. A missing file
// returns (nil, nil, nil); the caller decides whether that is an error.
func formImage(r *http.Request, field string, limits UploadLimits) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(limits.MaxBytes); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid multipart form", errs.ErrValidation)
	}

	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read uploaded file", errs.ErrValidation)
	}

	if header.Size > limits.MaxBytes {
		file.Close()
		return nil, nil, fmt.Errorf("%w: file exceeds the %d byte limit", errs.ErrValidation, limits.MaxBytes)
	}

	contentType := header.Header.Get("Content-Type")
	allowed := false
	for _, t := range limits.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			allowed = true
			break
		}
	}
	if !allowed {
		file.Close()
		return nil, nil, fmt.Errorf("%w: content type %q is not allowed", errs.ErrValidation, contentType)
	}

	return file, header, nil
}

// imageExt returns a normalized file extension for building storage keys.
func imageExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}

// contentTypeForExt maps a stored image's extension back to its content type.
func contentTypeForExt(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
