package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/errs"
	"github.com/Micah-Glenz/hierarchical-data-explorer/services"
)

type quoteHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.QuoteService
}

func newQuoteHandler(service *services.QuoteService) quoteHandler {
	logger := log.With().Str("handlerName", "quoteHandler").Logger()

	return quoteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// listQuotes retrieves a project's active quotes with vendor quote counts
func (h quoteHandler) listQuotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamInt(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		quotes, err := h.service.ListByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, quotes)
	}
}

// createQuote creates a quote under the project named in the body
func (h quoteHandler) createQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.QuoteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode quote request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		quote, err := h.service.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successResponse("Quote created successfully", quote))
	}
}

// updateQuote applies a partial update to a quote
func (h quoteHandler) updateQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID, err := urlParamInt(r, "quoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch services.QuotePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode quote request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		quote, err := h.service.Update(quoteID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, successResponse("Quote updated successfully", quote))
	}
}

// deleteQuote soft-deletes a quote and cascades to its vendor quotes
func (h quoteHandler) deleteQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID, err := urlParamInt(r, "quoteID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		summary, err := h.service.Delete(quoteID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := fmt.Sprintf(
			"Quote and %d vendor quotes deleted successfully (%d total items)",
			summary.VendorQuotes, summary.Total())
		h.responder.WriteJSON(w, deleteResponse(message, map[string]any{
			"deleted_quote_id": quoteID,
			"deletion_summary": summary,
		}))
	}
}
