package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

type ReturnHandler struct {
	returnSvc service.ReturnService
	images    *storage.ImageStore
	limits    UploadLimits
}

func NewReturnHandler(returnSvc service.ReturnService, images *storage.ImageStore, limits UploadLimits) *ReturnHandler {
	return &ReturnHandler{returnSvc: returnSvc, images: images, limits: limits}
}

// Submit binds the uploaded after photo into the after-images bucket and runs
// the return verification pipeline. The pipeline owns cleanup of the stored
// file on every abort path.
func (h *ReturnHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	file, header, err := formImage(r, "image", h.limits)
	if err != nil {
		respondError(w, err)
		return
	}

	req := service.ReturnRequest{
		RentalID: r.FormValue("rental_id"),
		ToolID:   r.FormValue("tool_id"),
		UserID:   claims.UserID,
	}
	if req.RentalID == "" || req.ToolID == "" {
		if file != nil {
			file.Close()
		}
		respondError(w, fmt.Errorf("%w: rental_id and tool_id are required", errs.ErrValidation))
		return
	}

	if file != nil {
		defer file.Close()
		key := storage.AfterKey(claims.UserID, req.ToolID, time.Now().UTC(), imageExt(header.Filename))
		if _, err := h.images.Save(storage.BucketAfter, key, file); err != nil {
			respondError(w, fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err))
			return
		}
		req.ImageKey = key
		req.FileName = header.Filename
		req.FileSize = header.Size
	}

	result, err := h.returnSvc.ProcessReturn(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, "return processed", result)
}
