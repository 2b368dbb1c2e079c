package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/services"
)

type vendorHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.VendorService
}

func newVendorHandler(service *services.VendorService) vendorHandler {
	logger := log.With().Str("handlerName", "vendorHandler").Logger()

	return vendorHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func (h vendorHandler) getAllVendors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.service.List())
	}
}

func (h vendorHandler) getVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := urlParamInt(r, "vendorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		vendor, err := h.service.Get(vendorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, vendor)
	}
}

func (h vendorHandler) createVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.VendorInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode vendor request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		vendor, err := h.service.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successResponse("Vendor created successfully", vendor))
	}
}

func (h vendorHandler) updateVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := urlParamInt(r, "vendorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch services.VendorPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode vendor request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		vendor, err := h.service.Update(vendorID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, successResponse("Vendor updated successfully", vendor))
	}
}

// deleteVendor soft-deletes the vendor only; its vendor quotes stay active
func (h vendorHandler) deleteVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := urlParamInt(r, "vendorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(vendorID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, deleteResponse("Vendor deleted successfully", map[string]any{
			"deleted_vendor_id": vendorID,
		}))
	}
}
