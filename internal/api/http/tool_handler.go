package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

type ToolHandler struct {
	catalogSvc service.CatalogService
	images     *storage.ImageStore
	authCheck  scorer.AuthenticityScorer
	limits     UploadLimits
}

func NewToolHandler(catalogSvc service.CatalogService, images *storage.ImageStore, authCheck scorer.AuthenticityScorer, limits UploadLimits) *ToolHandler {
	return &ToolHandler{catalogSvc: catalogSvc, images: images, authCheck: authCheck, limits: limits}
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalogSvc.ListTools(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	tool, err := h.catalogSvc.GetTool(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ToolInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, fmt.Errorf("%w: invalid JSON body", errs.ErrValidation))
		return
	}
	tool, err := h.catalogSvc.CreateTool(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "tool created", tool)
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.ToolInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, fmt.Errorf("%w: invalid JSON body", errs.ErrValidation))
		return
	}
	tool, err := h.catalogSvc.UpdateTool(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, "tool updated", tool)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteTool(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, "tool deleted", nil)
}

// UploadBeforeImage stores the reference "before" condition photo for a tool.
// The upload passes through the same authenticity gate as returns.
func (h *ToolHandler) UploadBeforeImage(w http.ResponseWriter, r *http.Request) {
	toolID := mux.Vars(r)["id"]

	if _, err := h.catalogSvc.GetTool(r.Context(), toolID); err != nil {
		respondError(w, err)
		return
	}

	file, header, err := formImage(r, "image", h.limits)
	if err != nil {
		respondError(w, err)
		return
	}
	if file == nil {
		respondError(w, errs.ErrNoImage)
		return
	}
	defer file.Close()

	key := storage.BeforeKey(toolID, imageExt(header.Filename))
	if _, err := h.images.Save(storage.BucketBefore, key, file); err != nil {
		respondError(w, fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err))
		return
	}

	path, _ := h.images.Path(storage.BucketBefore, key)
	authRes, err := h.authCheck.Score(r.Context(), path, header.Filename, header.Size)
	if err == nil && !authRes.AllowUpload {
		err = errs.ErrSyntheticImage
	}
	if err != nil {
		_ = h.images.Delete(storage.BucketBefore, key)
		respondError(w, err)
		return
	}

	if err := h.catalogSvc.SetBeforeImage(r.Context(), toolID, key); err != nil {
		_ = h.images.Delete(storage.BucketBefore, key)
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, "reference image stored", map[string]any{
		"before_image_ref": key,
		"authenticity":     authRes,
	})
}
