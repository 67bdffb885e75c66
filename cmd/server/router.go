package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jalvarado/contacts-api/internal/api"
	apiMiddleware "github.com/jalvarado/contacts-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	contactHandler := api.NewContactHandler(app.contactStore, app.logger)
	tagHandler := api.NewTagHandler(app.tagRegistry, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/contacts", contactHandler.ListContacts)
		r.Post("/contacts", contactHandler.CreateContact)
		r.Put("/contacts/{id}", contactHandler.UpdateContact)
		r.Delete("/contacts/{id}", contactHandler.DeleteContact)

		r.Get("/tags", tagHandler.ListTags)
		r.Post("/tags", tagHandler.CreateTag)
	})

	// Health check endpoint
	r.Get("/health", api.Health)

	return r
}
