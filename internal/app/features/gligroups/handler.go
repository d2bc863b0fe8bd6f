// internal/app/features/gligroups/handler.go
package gligroups

import (
	"net/http"

	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
	"github.com/dalemusser/gliweb/internal/app/system/auditlog"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the GLI group endpoints backed by the Airtable
// scheduling table. Store is nil when Airtable is not configured.
type Handler struct {
	Store    *gligroupstore.Store
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(store *gligroupstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		AuditLog: audit,
		Log:      logger,
	}
}

// requireStore answers 503 on every route while the table is unconfigured.
func (h *Handler) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Store == nil {
			jsonutil.WriteError(w, http.StatusServiceUnavailable, "Airtable is niet geconfigureerd")
			return
		}
		next.ServeHTTP(w, r)
	})
}
