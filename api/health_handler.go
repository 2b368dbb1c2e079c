package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	startupTime time.Time
}

func newHealthHandler(db database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		startupTime: startupTime,
	}
}

// health reports uptime and per-collection record counts
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status":         "ok",
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
			"collections": map[string]database.Stats{
				database.CustomersCollection:    h.db.CustomerStore().Stats(),
				database.ProjectsCollection:     h.db.ProjectStore().Stats(),
				database.QuotesCollection:       h.db.QuoteStore().Stats(),
				database.VendorsCollection:      h.db.VendorStore().Stats(),
				database.VendorQuotesCollection: h.db.VendorQuoteStore().Stats(),
			},
		})
	}
}
