package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		customerHandler:    newCustomerHandler(services.NewCustomerService(db)),
		projectHandler:     newProjectHandler(services.NewProjectService(db)),
		quoteHandler:       newQuoteHandler(services.NewQuoteService(db)),
		vendorHandler:      newVendorHandler(services.NewVendorService(db)),
		vendorQuoteHandler: newVendorQuoteHandler(services.NewVendorQuoteService(db, nil)),
		healthHandler:      newHealthHandler(db, startupTime),
	}
}

// urlParamInt reads a positive integer URL parameter.
func urlParamInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
