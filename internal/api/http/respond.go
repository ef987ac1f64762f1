package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
	"github.com/janellefernandes2005/tool-rental-system/internal/security"
)

// Response is the envelope for every mutating call: an explicit success flag
// plus a message. Read calls return the raw resource under data.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondSuccess(w http.ResponseWriter, status int, message string, data any) {
	respondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// respondError maps the error taxonomy onto HTTP status codes and always
// produces a structured body; no failure escapes as a bare 500 page.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrGateRejected):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusInternalServerError
		logger.Error("Persistence failure surfaced to client", "error", err)
	}
	respondJSON(w, status, Response{Success: false, Message: err.Error()})
}
