package http

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

// ImageHandler serves stored image blobs by bucket and filename.
type ImageHandler struct {
	images *storage.ImageStore
}

func NewImageHandler(images *storage.ImageStore) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucket, name := vars["bucket"], vars["name"]

	file, err := h.images.Open(bucket, name)
	if err != nil {
		respondError(w, errs.ErrNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentTypeForExt(name))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
