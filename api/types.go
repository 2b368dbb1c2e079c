package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	customerHandler    customerHandler
	projectHandler     projectHandler
	quoteHandler       quoteHandler
	vendorHandler      vendorHandler
	vendorQuoteHandler vendorQuoteHandler
	healthHandler      healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string            `json:"error" example:"Internal Server Error"`
	Status  string            `json:"status" example:"error"`
	Field   string            `json:"field,omitempty" example:"name"`
	Details string            `json:"details,omitempty" example:"Additional error details"`
	Cause   string            `json:"cause,omitempty" example:"Underlying error cause"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MutationResponse wraps the result of a create or update
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// DeleteResponse reports what a delete removed, including cascaded records
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func successResponse(message string, data any) MutationResponse {
	return MutationResponse{Success: true, Message: message, Data: data}
}

func deleteResponse(message string, data any) DeleteResponse {
	return DeleteResponse{Success: true, Message: message, Data: data}
}
