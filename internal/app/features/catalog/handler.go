// internal/app/features/catalog/handler.go
package catalog

import (
	coachstore "github.com/dalemusser/gliweb/internal/app/store/coaches"
	faqstore "github.com/dalemusser/gliweb/internal/app/store/faqs"
	programstore "github.com/dalemusser/gliweb/internal/app/store/programs"
	"go.uber.org/zap"
)

// APIVersion is reported by GET /api/.
const APIVersion = "1.0.0"

// Handler serves the public catalog: programmes, coaches and FAQs.
type Handler struct {
	Programs *programstore.Store
	Coaches  *coachstore.Store
	FAQs     *faqstore.Store
	Log      *zap.Logger
}

func NewHandler(programs *programstore.Store, coaches *coachstore.Store, faqs *faqstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Programs: programs,
		Coaches:  coaches,
		FAQs:     faqs,
		Log:      logger,
	}
}
