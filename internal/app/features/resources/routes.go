// internal/app/features/resources/routes.go
package resources

import (
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// ResourceRoutes is mounted at /api/resources.
//
//	member := resources.NewMemberHandler(resStore, eventStore, logger)
//	api.Mount("/resources", resources.ResourceRoutes(member, authn))
func ResourceRoutes(h *MemberHandler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireBearer)
	r.Get("/", h.ServeResources)
	return r
}

// EventRoutes is mounted at /api/events.
func EventRoutes(h *MemberHandler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireBearer)
	r.Get("/", h.ServeEvents)
	return r
}
