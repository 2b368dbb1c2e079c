package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/services"
)

type vendorQuoteHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.VendorQuoteService
}

func newVendorQuoteHandler(service *services.VendorQuoteService) vendorQuoteHandler {
	logger := log.With().Str("handlerName", "vendorQuoteHandler").Logger()

	return vendorQuoteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getAllVendorQuotes retrieves all active vendor quotes with enrichment
// @Summary Get all vendor quotes
// @Description Retrieves all active vendor quotes enriched with vendor and quote names
// @Tags VendorQuotes
// @Produce json
// @Success 200 {array} services.VendorQuoteView "List of vendor quotes"
// @Router /api/vendor-quotes [get]
func (h vendorQuoteHandler) getAllVendorQuotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.service.List())
	}
}

// getVendorQuote retrieves a specific vendor quote by ID
// @Summary Get vendor quote
// @Tags VendorQuotes
// @Produce json
// @Param vendorQuoteID path int true "Vendor quote ID"
// @Success 200 {object} services.VendorQuoteView "Vendor quote details"
// @Failure 404 {object} ErrorResponse "Not Found - Vendor quote not found"
// @Router /api/vendor-quotes/{vendorQuoteID} [get]
func (h vendorQuoteHandler) getVendorQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorQuoteID, err := urlParamInt(r, "vendorQuoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		vq, err := h.service.Get(vendorQuoteID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, vq)
	}
}

// createVendorQuote creates a vendor quote, assigning a tracking ID when the
// request does not carry one
// @Summary Create vendor quote
// @Tags VendorQuotes
// @Accept json
// @Produce json
// @Param vendorQuote body services.VendorQuoteInput true "Vendor quote data"
// @Success 201 {object} MutationResponse "Created vendor quote"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid data or missing parent"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate pair or tracking ID"
// @Router /api/vendor-quotes [post]
func (h vendorQuoteHandler) createVendorQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.VendorQuoteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode vendor quote request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		vq, err := h.service.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successResponse("Vendor quote created successfully", vq))
	}
}

// updateVendorQuote applies a partial update to a vendor quote
func (h vendorQuoteHandler) updateVendorQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorQuoteID, err := urlParamInt(r, "vendorQuoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch services.VendorQuotePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode vendor quote request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		vq, err := h.service.Update(vendorQuoteID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, successResponse("Vendor quote updated successfully", vq))
	}
}

// deleteVendorQuote is a leaf-level soft delete
func (h vendorQuoteHandler) deleteVendorQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorQuoteID, err := urlParamInt(r, "vendorQuoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(vendorQuoteID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, deleteResponse("Vendor quote deleted successfully", map[string]any{
			"deleted_vendor_quote_id": vendorQuoteID,
		}))
	}
}

// getVendorQuotesByQuote lists the vendor quotes requested against one quote
func (h vendorQuoteHandler) getVendorQuotesByQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID, err := urlParamInt(r, "quoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		vqs, err := h.service.ListByQuote(quoteID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, vqs)
	}
}

// getVendorQuotesByVendor lists the vendor quotes a vendor has been asked for
func (h vendorQuoteHandler) getVendorQuotesByVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := urlParamInt(r, "vendorID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		vqs, err := h.service.ListByVendor(vendorID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, vqs)
	}
}

// getVendorQuoteByTracking resolves a tracking ID to its vendor quote
func (h vendorQuoteHandler) getVendorQuoteByTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackingID := chi.URLParam(r, "trackingID")
		if trackingID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing trackingID"))
			return
		}

		vq, err := h.service.GetByTrackingID(trackingID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, vq)
	}
}
