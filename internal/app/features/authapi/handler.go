// internal/app/features/authapi/handler.go
package authapi

import (
	userstore "github.com/dalemusser/gliweb/internal/app/store/users"
	"github.com/dalemusser/gliweb/internal/app/system/auditlog"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/ratelimit"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves registration, login and the profile of the caller.
// Limiter may be nil, which disables login throttling.
type Handler struct {
	Users    *userstore.Store
	Signer   *auth.Signer
	Limiter  *ratelimit.LoginLimiter
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(users *userstore.Store, signer *auth.Signer, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    users,
		Signer:   signer,
		Limiter:  limiter,
		AuditLog: audit,
		Log:      logger,
	}
}

// authResponse is the body of a successful register or login.
type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
