package contact

import "github.com/go-chi/chi/v5"

// Routes is mounted at /api/contact. Submissions are public.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	return r
}
