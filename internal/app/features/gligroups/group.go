// internal/app/features/gligroups/group.go
package gligroups

import (
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func notFound(w http.ResponseWriter, id string) {
	jsonutil.WriteError(w, http.StatusNotFound, "GLI groep "+id+" niet gevonden")
}

// ServeGroup handles GET /api/gli-groepen/{id}.
func (h *Handler) ServeGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := h.Store.Get(r.Context(), id)
	if !ok {
		notFound(w, id)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, g)
}

// HandleCreate handles POST /api/gli-groepen.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.GLIGroupCreate
	res, err := inputval.Decode(r.Context(), r, inputval.GroupCreate, &in)
	if err != nil {
		h.Log.Error("decode gli group", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan GLI groep niet aanmaken")
		return
	}
	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		jsonutil.WriteFieldError(w, "einddatum_groep must not be before startdatum_groep", "body", "einddatum_groep")
		return
	}

	g, err := h.Store.Create(r.Context(), in)
	if err != nil {
		h.Log.Error("create gli group", zap.Error(err), zap.String("groepnummer", in.GroupNumber))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan GLI groep niet aanmaken")
		return
	}
	h.AuditLog.GLIGroupCreated(r.Context(), r, g)
	jsonutil.WriteJSON(w, http.StatusOK, g)
}

// HandleUpdate handles PUT /api/gli-groepen/{id}. Absent and null fields
// keep their stored value.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var u models.GLIGroupUpdate
	res, err := inputval.Decode(r.Context(), r, inputval.GroupUpdate, &u)
	if err != nil {
		h.Log.Error("decode gli group update", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan GLI groep niet updaten")
		return
	}
	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}
	if u.StartDate != nil && u.EndDate != nil && u.EndDate.Before(*u.StartDate) {
		jsonutil.WriteFieldError(w, "einddatum_groep must not be before startdatum_groep", "body", "einddatum_groep")
		return
	}

	g, ok := h.Store.Update(r.Context(), id, u)
	if !ok {
		notFound(w, id)
		return
	}
	if !u.IsEmpty() {
		h.AuditLog.GLIGroupUpdated(r.Context(), r, g)
	}
	h.Log.Info("gli group updated", zap.String("id", id), zap.String("groepnummer", g.GroupNumber))
	jsonutil.WriteJSON(w, http.StatusOK, g)
}

// HandleDelete handles DELETE /api/gli-groepen/{id}. The group is read
// first so a missing id is a 404 and the reply can name its number.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, ok := h.Store.Get(r.Context(), id)
	if !ok {
		notFound(w, id)
		return
	}
	if !h.Store.Delete(r.Context(), id) {
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan GLI groep niet verwijderen")
		return
	}

	h.AuditLog.GLIGroupDeleted(r.Context(), r, g)
	h.Log.Info("gli group deleted", zap.String("id", id))
	jsonutil.WriteJSON(w, http.StatusOK, jsonutil.Message{Message: "GLI groep " + g.GroupNumber + " succesvol verwijderd"})
}
