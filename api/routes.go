package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. List endpoints for projects and quotes
// are parent-scoped: a project list is always requested for one customer,
// a quote list for one project.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.health())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Route("/api", func(r chi.Router) {
			// Customer endpoints
			r.Get("/customers", handlers.customerHandler.getAllCustomers())
			r.Post("/customers", handlers.customerHandler.createCustomer())
			r.Get("/customers/{customerID}", handlers.customerHandler.getCustomer())
			r.Put("/customers/{customerID}", handlers.customerHandler.updateCustomer())
			r.Delete("/customers/{customerID}", handlers.customerHandler.deleteCustomer())
			r.Get("/customers/{customerID}/stats", handlers.customerHandler.getCustomerStats())

			// Project endpoints
			r.Get("/projects/{customerID}", handlers.projectHandler.listProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			// Quote endpoints
			r.Get("/quotes/{projectID}", handlers.quoteHandler.listQuotes())
			r.Post("/quotes", handlers.quoteHandler.createQuote())
			r.Put("/quotes/{quoteID}", handlers.quoteHandler.updateQuote())
			r.Delete("/quotes/{quoteID}", handlers.quoteHandler.deleteQuote())

			// Vendor endpoints
			r.Get("/vendors", handlers.vendorHandler.getAllVendors())
			r.Post("/vendors", handlers.vendorHandler.createVendor())
			r.Get("/vendors/{vendorID}", handlers.vendorHandler.getVendor())
			r.Put("/vendors/{vendorID}", handlers.vendorHandler.updateVendor())
			r.Delete("/vendors/{vendorID}", handlers.vendorHandler.deleteVendor())

			// Vendor quote endpoints
			r.Get("/vendor-quotes", handlers.vendorQuoteHandler.getAllVendorQuotes())
			r.Post("/vendor-quotes", handlers.vendorQuoteHandler.createVendorQuote())
			r.Get("/vendor-quotes/by-quote/{quoteID}", handlers.vendorQuoteHandler.getVendorQuotesByQuote())
			r.Get("/vendor-quotes/by-vendor/{vendorID}", handlers.vendorQuoteHandler.getVendorQuotesByVendor())
			r.Get("/vendor-quotes/tracking/{trackingID}", handlers.vendorQuoteHandler.getVendorQuoteByTracking())
			r.Get("/vendor-quotes/{vendorQuoteID}", handlers.vendorQuoteHandler.getVendorQuote())
			r.Put("/vendor-quotes/{vendorQuoteID}", handlers.vendorQuoteHandler.updateVendorQuote())
			r.Delete("/vendor-quotes/{vendorQuoteID}", handlers.vendorQuoteHandler.deleteVendorQuote())
		})
	})
}
