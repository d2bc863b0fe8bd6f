// internal/app/features/catalog/routes.go
package catalog

import "github.com/go-chi/chi/v5"

// Routes is mounted at /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	r.Get("/programs", h.ServePrograms)
	r.Get("/coaches", h.ServeCoaches)
	r.Get("/faqs", h.ServeFAQs)
	return r
}
