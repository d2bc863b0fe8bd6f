// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/normalize"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

const invalidCredentials = "Invalid credentials"

// HandleLogin handles POST /api/auth/login. Unknown email and wrong
// password get the same 401.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in models.UserLogin
	res, err := inputval.Decode(r.Context(), r, inputval.Login, &in)
	if err != nil {
		h.Log.Error("decode login body", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if res.HasErrors() {
		jsonutil.WriteValidation(w, res)
		return
	}
	email := normalize.Email(in.Email)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.AuditLog.LoginRateLimited(ctx, r, email)
			jsonutil.WriteError(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, auth.ErrUserNotFound) {
		h.AuditLog.LoginFailedUserNotFound(ctx, r, email)
		jsonutil.WriteError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err != nil {
		h.Log.Error("login: user lookup", zap.Error(err))
		jsonutil.WriteError(w, http.StatusServiceUnavailable, "Login failed")
		return
	}

	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		h.AuditLog.LoginFailedWrongPassword(ctx, r, u)
		jsonutil.WriteError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	token, err := h.Signer.Issue(u)
	if err != nil {
		h.Log.Error("login: issue token", zap.Error(err))
		jsonutil.WriteError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(email)
	}
	h.AuditLog.LoginSuccess(ctx, r, u)
	jsonutil.WriteJSON(w, http.StatusOK, authResponse{User: u, Token: token})
}
