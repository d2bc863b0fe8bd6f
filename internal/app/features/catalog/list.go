// internal/app/features/catalog/list.go
package catalog

import (
	"context"
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// ServeRoot handles GET /api/.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	jsonutil.WriteJSON(w, http.StatusOK, rootResponse{Message: "GLI Webapp API", Version: APIVersion})
}

// ServePrograms handles GET /api/programs.
func (h *Handler) ServePrograms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Programs.List(ctx)
	if err != nil {
		h.Log.Error("list programs", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Could not load programs")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, items)
}

// ServeCoaches handles GET /api/coaches.
func (h *Handler) ServeCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Coaches.List(ctx)
	if err != nil {
		h.Log.Error("list coaches", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Could not load coaches")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, items)
}

// ServeFAQs handles GET /api/faqs[?role=]. The role is matched as given;
// an unknown role yields [].
func (h *Handler) ServeFAQs(w http.ResponseWriter, r *http.Request) {
	role := query.Get(r, "role")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.FAQs.List(ctx, role)
	if err != nil {
		h.Log.Error("list faqs", zap.Error(err), zap.String("role", role))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Could not load FAQs")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, items)
}
