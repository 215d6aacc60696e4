package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	// websocket upgrades need the raw connection, so no logging or gzip wrappers
	router.Get("/api/notifications", h.streamNotifications)

	router.Group(func(r chi.Router) {
		r.Use(h.withLogging)
		r.Use(withGZip)

		r.Get("/api/version", h.getVersion)

		r.Get("/api/record", h.getRecord)
		r.Put("/api/record", h.replaceRecord)
		r.Put("/api/record/strategy", h.setStrategy)
		r.Post("/api/record/{collection}", h.addItem)
		r.Delete("/api/record/{collection}/{id}", h.removeItem)

		r.Post("/api/sync", h.syncNow)
		r.Get("/api/sync/status", h.syncStatus)
		r.Get("/api/sync/policy", h.getPolicy)
		r.Put("/api/sync/policy", h.setPolicy)

		r.Get("/api/backups", h.listBackups)
		r.Post("/api/backups", h.createBackup)
		r.Post("/api/backups/{key}/restore", h.restoreBackup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
