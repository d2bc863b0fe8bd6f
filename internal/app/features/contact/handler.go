// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"

	contactstore "github.com/dalemusser/gliweb/internal/app/store/contacts"
	"github.com/dalemusser/gliweb/internal/app/system/htmlsanitize"
	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/normalize"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Contacts *contactstore.Store
	Log      *zap.Logger
}

func NewHandler(contacts *contactstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Contacts: contacts,
		Log:      logger,
	}
}

type contactInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Message     string  `json:"message"`
	RequestType string  `json:"request_type"`
}

// HandleSubmit handles POST /api/contact. Free text is stored as plain
// text; any markup in it is stripped.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	res, err := inputval.Decode(r.Context(), r, inputval.Contact, &in)
	if err != nil {
		h.Log.Error("decode contact body", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Contact request failed")
		return
	}
	email := normalize.Email(in.Email)
	if !res.HasErrors() && !inputval.IsValidEmail(email) {
		res.Add("value is not a valid email address", "body", "email")
	}
	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}

	cr := models.ContactRequest{
		Name:        htmlsanitize.PlainText(in.Name),
		Email:       email,
		Message:     htmlsanitize.PlainText(in.Message),
		RequestType: normalize.Text(in.RequestType),
	}
	if in.Phone != nil {
		p := normalize.Text(*in.Phone)
		cr.Phone = &p
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Contacts.Create(ctx, cr)
	if err != nil {
		h.Log.Error("store contact request", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Contact request failed")
		return
	}
	h.Log.Info("contact request stored",
		zap.String("id", saved.ID),
		zap.String("request_type", saved.RequestType))
	jsonutil.WriteJSON(w, http.StatusOK, jsonutil.Message{Message: "Contact request submitted successfully"})
}
