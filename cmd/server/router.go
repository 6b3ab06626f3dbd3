package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmallory/roster-api/internal/api"
	apiMiddleware "github.com/jmallory/roster-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	recordHandler := api.NewRecordHandler(app.recordStore, app.config.Store, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/records", recordHandler.CreateRecord)
		r.Get("/records", recordHandler.ListRecords)
		r.Get("/records/{id}", recordHandler.GetRecord)
		r.Put("/records/{id}", recordHandler.ReplaceRecord)
		r.Patch("/records/{id}", recordHandler.MergeRecord)
		r.Delete("/records/{id}", recordHandler.DeleteRecord)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
