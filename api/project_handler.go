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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.ProjectService
}

func newProjectHandler(service *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// listProjects retrieves a customer's active projects with quote counts
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := urlParamInt(r, "customerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.service.ListByCustomer(customerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject creates a project under the customer named in the body
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.service.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, successResponse("Project created successfully", project))
	}
}

// updateProject applies a partial update to a project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamInt(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch services.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.service.Update(projectID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, successResponse("Project updated successfully", project))
	}
}

// deleteProject soft-deletes a project and cascades to quotes and vendor quotes
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamInt(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		summary, err := h.service.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := fmt.Sprintf(
			"Project and %d quotes and %d vendor quotes deleted successfully (%d total items)",
			summary.Quotes, summary.VendorQuotes, summary.Total())
		h.responder.WriteJSON(w, deleteResponse(message, map[string]any{
			"deleted_project_id": projectID,
			"deletion_summary":   summary,
		}))
	}
}
