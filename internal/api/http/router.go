// Package http exposes the JSON/form API over gorilla/mux.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/janellefernandes2005/tool-rental-system/internal/scorer"
	"github.com/janellefernandes2005/tool-rental-system/internal/security"
	"github.com/janellefernandes2005/tool-rental-system/internal/service"
	"github.com/janellefernandes2005/tool-rental-system/internal/storage"
)

// RouterDeps bundles everything the API surface needs.
type RouterDeps struct {
	Auth    service.AuthService
	Catalog service.CatalogService
	Rental  service.RentalService
	Return  service.ReturnService
	Audit   service.AuditService
	Images  *storage.ImageStore
	Scorer  scorer.AuthenticityScorer
	Tokens  security.TokenManager
	Limits  UploadLimits
}

// NewRouter wires all endpoints. Reads on the catalog and images are public;
// mutations require a token and admin routes an admin token.
func NewRouter(deps RouterDeps) *mux.Router {
	authMW := NewAuthMiddleware(deps.Tokens)

	authHandler := NewAuthHandler(deps.Auth)
	toolHandler := NewToolHandler(deps.Catalog, deps.Images, deps.Scorer, deps.Limits)
	rentalHandler := NewRentalHandler(deps.Rental)
	returnHandler := NewReturnHandler(deps.Return, deps.Images, deps.Limits)
	logHandler := NewLogHandler(deps.Audit)
	imageHandler := NewImageHandler(deps.Images)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/tools", toolHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id}", toolHandler.Get).Methods(http.MethodGet)
	api.Handle("/tools", authMW.RequireAdmin(http.HandlerFunc(toolHandler.Create))).Methods(http.MethodPost)
	api.Handle("/tools/{id}", authMW.RequireAdmin(http.HandlerFunc(toolHandler.Update))).Methods(http.MethodPut)
	api.Handle("/tools/{id}", authMW.RequireAdmin(http.HandlerFunc(toolHandler.Delete))).Methods(http.MethodDelete)
	api.Handle("/tools/{id}/image", authMW.RequireAdmin(http.HandlerFunc(toolHandler.UploadBeforeImage))).Methods(http.MethodPost)

	api.Handle("/rentals", authMW.Require(http.HandlerFunc(rentalHandler.Rent))).Methods(http.MethodPost)
	api.Handle("/rentals", authMW.Require(http.HandlerFunc(rentalHandler.List))).Methods(http.MethodGet)

	api.Handle("/returns", authMW.Require(http.HandlerFunc(returnHandler.Submit))).Methods(http.MethodPost)

	api.Handle("/logs", authMW.RequireAdmin(http.HandlerFunc(logHandler.List))).Methods(http.MethodGet)
	api.Handle("/logs/{id}/resolve", authMW.RequireAdmin(http.HandlerFunc(logHandler.Resolve))).Methods(http.MethodPost)

	api.HandleFunc("/images/{bucket}/{name}", imageHandler.Download).Methods(http.MethodGet)

	return r
}
