package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
)

type LogHandler struct {
	auditSvc service.AuditService
}

func NewLogHandler(auditSvc service.AuditService) *LogHandler {
	return &LogHandler{auditSvc: auditSvc}
}

func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditSvc.ListLogs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

type resolveRequest struct {
	Action string `json:"action"`
}

func (h *LogHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	logID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, fmt.Errorf("%w: invalid log id", errs.ErrValidation))
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: invalid JSON body", errs.ErrValidation))
		return
	}

	result, err := h.auditSvc.Resolve(r.Context(), logID, domain.ResolveAction(req.Action))
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, result.Message, result)
}
