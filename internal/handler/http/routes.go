package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/organizations", h.listOrganizations)
		r.Get("/organizations_full", h.listOrganizations)
		r.Get("/organizations_with_location", h.listOrganizationsWithLocation)
		r.Get("/organizations_without_location", h.listOrganizationsWithoutLocation)
		r.Put("/organizations/{id}/status", h.updateStatus)
		r.Get("/state", h.getState)
		r.Get("/counties", h.listCounties)
		r.Get("/export.csv", h.exportCSV)
		r.Get("/map", h.renderMap)
	})

	return router
}
