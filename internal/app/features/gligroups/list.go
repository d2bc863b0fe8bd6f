// internal/app/features/gligroups/list.go
package gligroups

import (
	"net/http"

	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeList handles GET /api/gli-groepen?gli_type=&status=&aanbieder=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var f gligroupstore.Filter
	res := &inputval.Result{}

	if v := query.Get(r, "gli_type"); v != "" {
		f.Type = models.GLIType(v)
		if !f.Type.Valid() {
			res.Add("value is not a valid GLI type", "query", "gli_type")
		}
	}
	if v := query.Get(r, "status"); v != "" {
		f.Status = models.GroupStatus(v)
		if !f.Status.Valid() {
			res.Add("value is not a valid group status", "query", "status")
		}
	}
	f.Provider = query.Get(r, "aanbieder")

	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}

	groups, err := h.Store.List(r.Context(), f)
	if err != nil {
		h.Log.Error("list gli groups", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan GLI groepen niet ophalen uit Airtable")
		return
	}
	h.Log.Debug("gli groups listed", zap.Int("count", len(groups)))
	jsonutil.WriteJSON(w, http.StatusOK, groups)
}

// ServeActive handles GET /api/gli-groepen/actief.
func (h *Handler) ServeActive(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Store.ListActive(r.Context())
	if err != nil {
		h.Log.Error("list active gli groups", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan actieve groepen niet ophalen")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, groups)
}

// ServeByType handles GET /api/gli-groepen/type/{type}.
func (h *Handler) ServeByType(w http.ResponseWriter, r *http.Request) {
	t := models.GLIType(chi.URLParam(r, "type"))
	if !t.Valid() {
		jsonutil.WriteFieldError(w, "value is not a valid GLI type", "path", "gli_type")
		return
	}

	groups, err := h.Store.ListByType(r.Context(), t)
	if err != nil {
		h.Log.Error("list gli groups by type", zap.Error(err), zap.String("type", string(t)))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan groepen voor "+string(t)+" niet ophalen")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, groups)
}

// ServeStatistics handles GET /api/gli-groepen/statistieken.
func (h *Handler) ServeStatistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.Store.Statistics(r.Context())
	if err != nil {
		h.Log.Error("gli group statistics", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Kan statistieken niet ophalen")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, st)
}
