package resources

import (
	"context"
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeResources handles GET /api/resources. A role nothing targets gets [].
func (h *MemberHandler) ServeResources(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Resources.ListForRole(ctx, u.Role)
	if err != nil {
		h.Log.Error("list resources", zap.Error(err), zap.String("role", string(u.Role)))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Could not load resources")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, items)
}

// ServeEvents handles GET /api/events.
func (h *MemberHandler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Events.ListForRole(ctx, u.Role)
	if err != nil {
		h.Log.Error("list events", zap.Error(err), zap.String("role", string(u.Role)))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Could not load events")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, items)
}
