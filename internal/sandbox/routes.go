package sandbox

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving every sandbox resource.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// Open311 resources, suffixed with .json or .xml
	router.Group(func(r chi.Router) {
		r.Use(h.withFormat)

		r.Get("/discovery.{format}", h.discovery)
		r.Get("/services.{format}", h.services)
		r.Get("/services/{code}.{format}", h.serviceDefinition)
		r.Get("/requests.{format}", h.requests)
		r.Post("/requests.{format}", h.createRequest)
		r.Get("/requests/{id}.{format}", h.request)
		r.Get("/tokens/{id}.{format}", h.token)
	})

	router.Get("/media/{id}", h.media)

	return router
}
