// Package api serves the univariate summaries as JSON for scripts and
// notebooks. It shares the browser's session cookie with the web page, so
// a dataset uploaded in the UI can be queried here.
package api

import (
	"net/http"

	"univar/app"
	"univar/internal"
	"univar/internal/config"
	"univar/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Prefix is where the API is mounted in the web server
const Prefix = "/api"

// Handler serves the JSON API
type Handler struct {
	store    ports.DatasetStore
	analysis *app.AnalysisService
	cfg      config.AnalysisConfig
	logger   *internal.Logger
}

// NewHandler creates the API handler
func NewHandler(store ports.DatasetStore, analysis *app.AnalysisService, cfg config.AnalysisConfig, logger *internal.Logger) *Handler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Handler{
		store:    store,
		analysis: analysis,
		cfg:      cfg,
		logger:   logger.WithComponent("API"),
	}
}

// Routes builds the chi router. Paths include Prefix because the web
// server forwards requests without stripping it.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route(Prefix+"/v1", func(r chi.Router) {
		r.Get("/dataset", h.handleDataset)
		r.Get("/columns/{name}/summary", h.handleColumnSummary)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no such endpoint", Code: "NOT_FOUND"})
	})
	return r
}
