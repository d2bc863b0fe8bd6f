// internal/app/features/seed/routes.go
package seed

import (
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes is mounted at /api/admin. When adminOnly is set the seed route
// requires an admin bearer token; otherwise it is public.
func Routes(h *Handler, authn *auth.Authenticator, adminOnly bool) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		if adminOnly {
			pr.Use(authn.RequireBearer)
			pr.Use(auth.RequireRole(models.RoleAdmin))
		}
		pr.Post("/seed", h.HandleSeed)
	})
	return r
}
