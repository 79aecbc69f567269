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

	router.Route("/api", func(r chi.Router) {
		r.Route("/catalogs", func(r chi.Router) {
			r.Get("/", h.listCatalogs)
			r.Post("/download", h.downloadCatalog)
			r.Post("/load", h.loadCatalogFromCache)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Get("/size", h.estimateDownloadSize)
			r.Get("/updates", h.checkForUpdates)
			r.Post("/apply", h.applyUpdates)
		})

		r.Route("/content", func(r chi.Router) {
			r.Post("/download", h.downloadContent)
			r.Get("/status", h.transferStatus)
		})

		r.Route("/cache", func(r chi.Router) {
			r.Get("/exists", h.cacheExists)
			r.Delete("/", h.clearCache)
		})
	})

	return router
}
