// internal/app/features/seed/handler.go
package seed

import (
	"context"
	"net/http"

	coachstore "github.com/dalemusser/gliweb/internal/app/store/coaches"
	faqstore "github.com/dalemusser/gliweb/internal/app/store/faqs"
	programstore "github.com/dalemusser/gliweb/internal/app/store/programs"
	"github.com/dalemusser/gliweb/internal/app/system/auditlog"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler appends the catalog on every call. With Once set, a database
// that already holds programmes is left alone.
type Handler struct {
	Catalog  Catalog
	Programs *programstore.Store
	Coaches  *coachstore.Store
	FAQs     *faqstore.Store
	Once     bool
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(cat Catalog, programs *programstore.Store, coaches *coachstore.Store, faqs *faqstore.Store, once bool, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  cat,
		Programs: programs,
		Coaches:  coaches,
		FAQs:     faqs,
		Once:     once,
		AuditLog: audit,
		Log:      logger,
	}
}

const seeded = "Data seeded successfully"

// HandleSeed handles POST /api/admin/seed.
func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "seed catalog")
	defer cancel()

	if h.Once {
		n, err := h.Programs.Count(ctx)
		if err != nil {
			h.Log.Error("seed: count programs", zap.Error(err))
			jsonutil.WriteError(w, http.StatusServiceUnavailable, "Seeding failed")
			return
		}
		if n > 0 {
			h.Log.Info("seed: catalog already present, skipping", zap.Int64("programs", n))
			jsonutil.WriteJSON(w, http.StatusOK, jsonutil.Message{Message: seeded})
			return
		}
	}

	if err := h.insert(ctx); err != nil {
		h.Log.Error("seed catalog", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Seeding failed")
		return
	}

	h.AuditLog.CatalogSeeded(ctx, r, len(h.Catalog.Programs), len(h.Catalog.Coaches), len(h.Catalog.FAQs))
	jsonutil.WriteJSON(w, http.StatusOK, jsonutil.Message{Message: seeded})
}

// insert writes programmes, then coaches, then FAQs, stopping at the
// first failure. Each record gets a fresh id.
func (h *Handler) insert(ctx context.Context) error {
	for _, p := range h.Catalog.Programs {
		if _, err := h.Programs.Create(ctx, p); err != nil {
			return err
		}
	}
	for _, c := range h.Catalog.Coaches {
		if _, err := h.Coaches.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, f := range h.Catalog.FAQs {
		if _, err := h.FAQs.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
