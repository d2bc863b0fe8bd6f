// internal/app/features/authapi/register.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/gliweb/internal/app/store/users"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/normalize"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

// HandleRegister handles POST /api/auth/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	res, err := inputval.Decode(r.Context(), r, inputval.Register, &in)
	if err != nil {
		h.Log.Error("decode register body", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	in.Email = normalize.Email(in.Email)
	if !res.HasErrors() && !inputval.IsValidEmail(in.Email) {
		res.Add("value is not a valid email address", "body", "email")
	}
	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	exists, err := h.Users.EmailExists(ctx, in.Email)
	if err != nil {
		h.Log.Error("register: email lookup", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Registration failed")
		return
	}
	if exists {
		h.AuditLog.RegisterDuplicateEmail(ctx, r, in.Email)
		jsonutil.WriteError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		h.Log.Error("register: hash password", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	u, err := h.Users.Create(ctx, models.User{
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: hash,
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		// Lost a race with a concurrent registration.
		h.AuditLog.RegisterDuplicateEmail(ctx, r, in.Email)
		jsonutil.WriteError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		h.Log.Error("register: insert user", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Registration failed")
		return
	}

	token, err := h.Signer.Issue(u)
	if err != nil {
		h.Log.Error("register: issue token", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.AuditLog.UserRegistered(ctx, r, u)
	jsonutil.WriteJSON(w, http.StatusOK, authResponse{User: u, Token: token})
}
