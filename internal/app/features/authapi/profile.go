// internal/app/features/authapi/profile.go
package authapi

import (
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
)

// ServeProfile handles GET /api/auth/profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, u)
}
