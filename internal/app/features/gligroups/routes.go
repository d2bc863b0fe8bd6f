// internal/app/features/gligroups/routes.go
package gligroups

import "github.com/go-chi/chi/v5"

// Routes is mounted at /api/gli-groepen.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(h.requireStore)

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// Fixed paths go before /{id} so they are not read as record ids.
	r.Get("/actief", h.ServeActive)
	r.Get("/type/{type}", h.ServeByType)
	r.Get("/statistieken", h.ServeStatistics)

	r.Get("/{id}", h.ServeGroup)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
