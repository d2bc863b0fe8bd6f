// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes is mounted at /api/auth.
func Routes(h *Handler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(authn.RequireBearer)
		pr.Get("/profile", h.ServeProfile)
	})

	return r
}
