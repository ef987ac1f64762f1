package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/errs"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	ToolID   string `json:"tool_id"`
	RentDays int    `json:"rent_days"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req rentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: invalid JSON body", errs.ErrValidation))
		return
	}

	rental, err := h.rentalSvc.RentTool(r.Context(), claims.UserID, req.ToolID, req.RentDays)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, "tool rented", rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	includeAll := claims.Role == domain.UserRoleAdmin
	rentals, err := h.rentalSvc.ListRentals(r.Context(), claims.UserID, includeAll)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}
