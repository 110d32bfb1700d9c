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

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.index)
		r.Get("/search", h.search)
		r.Post("/fetch", h.fetch)
		r.Get("/download", h.download)
		r.Get("/api/version", h.version)
	})

	// promhttp negotiates its own compression
	router.Handle("/metrics", h.metrics)

	return router
}
