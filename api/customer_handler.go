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

type customerHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.CustomerService
}

func newCustomerHandler(service *services.CustomerService) customerHandler {
	logger := log.With().Str("handlerName", "customerHandler").Logger()

	return customerHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getAllCustomers retrieves all active customers
// @Summary Get all customers
// @Description Retrieves all active customers with their project counts
// @Tags Customers
// @Produce json
// @Success 200 {array} services.CustomerView "List of customers"
// @Router /api/customers [get]
func (h customerHandler) getAllCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.service.List())
	}
}

// getCustomer retrieves a specific customer by ID
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} services.CustomerView "Customer details"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Router /api/customers/{customerID} [get]
func (h customerHandler) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := urlParamInt(r, "customerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		customer, err := h.service.Get(customerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, customer)
	}
}

// createCustomer creates a new customer
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body services.CustomerInput true "Customer data"
// @Success 201 {object} MutationResponse "Created customer"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid customer data"
// @Failure 409 {object} ErrorResponse "Conflict - Customer name already in use"
// @Router /api/customers [post]
func (h customerHandler) createCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.CustomerInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode customer request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		customer, err := h.service.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successResponse("Customer created successfully", customer))
	}
}

// updateCustomer applies a partial update to a customer
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param customer body services.CustomerPatch true "Fields to update"
// @Success 200 {object} MutationResponse "Updated customer"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Router /api/customers/{customerID} [put]
func (h customerHandler) updateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := urlParamInt(r, "customerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch services.CustomerPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode customer request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		customer, err := h.service.Update(customerID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, successResponse("Customer updated successfully", customer))
	}
}

// deleteCustomer soft-deletes a customer and everything beneath it
// @Summary Delete customer
// @Description Soft-deletes the customer and cascades to its projects, quotes, and vendor quotes
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} DeleteResponse "Deletion summary"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Cascade partially failed"
// @Router /api/customers/{customerID} [delete]
func (h customerHandler) deleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := urlParamInt(r, "customerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		summary, err := h.service.Delete(customerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := fmt.Sprintf(
			"Customer and %d projects, %d quotes, and %d vendor quotes deleted successfully (%d total items)",
			summary.Projects, summary.Quotes, summary.VendorQuotes, summary.Total())
		h.responder.WriteJSON(w, deleteResponse(message, map[string]any{
			"deleted_customer_id": customerID,
			"deletion_summary":    summary,
		}))
	}
}

// getCustomerStats reports the hierarchy sizes under a customer
// @Summary Get customer statistics
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} services.CustomerStats "Customer statistics"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Router /api/customers/{customerID}/stats [get]
func (h customerHandler) getCustomerStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := urlParamInt(r, "customerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		stats, err := h.service.Stats(customerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
