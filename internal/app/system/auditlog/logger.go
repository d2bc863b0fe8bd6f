// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/gliweb/internal/app/store/audit"
	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/app/system/ratelimit"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

// Destinations for a category of events.
const (
	ToAll = "all" // MongoDB and zap
	ToDB  = "db"
	ToLog = "log"
	Off   = "off"
)

// Config picks a destination per category.
type Config struct {
	Auth  string
	Admin string
}

// Logger writes audit events to the audit store and/or zap. A nil
// *Logger discards everything, so handlers under test can leave it unset.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{store: store, zapLog: zapLog, config: config}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.ActorEmail != "" {
		fields = append(fields, zap.String("actor_email", event.ActorEmail))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log routes event according to the category's configured destination.
// Unknown categories go everywhere.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := ToAll
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	}

	switch setting {
	case Off:
		return
	case ToLog:
		l.logToZap(event)
	case ToDB:
		l.toStore(ctx, event)
	default:
		l.logToZap(event)
		l.toStore(ctx, event)
	}
}

func (l *Logger) toStore(ctx context.Context, event audit.Event) {
	if l.store == nil {
		return
	}
	if err := l.store.Log(ctx, event); err != nil {
		l.zapLog.Error("failed to store audit event",
			zap.Error(err),
			zap.String("event_type", event.EventType),
		)
	}
}

func requestEvent(r *http.Request, category, eventType string, success bool) audit.Event {
	e := audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
	if u, ok := auth.CurrentUser(r); ok {
		e.ActorEmail = u.Email
	}
	return e
}

// --- Authentication events ---

func (l *Logger) UserRegistered(ctx context.Context, r *http.Request, u models.User) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventUserRegistered, true)
	e.UserID, e.Email = u.ID, u.Email
	e.Details = map[string]string{"role": string(u.Role)}
	l.Log(ctx, e)
}

func (l *Logger) RegisterDuplicateEmail(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventRegisterDuplicateEmail, false)
	e.Email = email
	e.FailureReason = "email already registered"
	l.Log(ctx, e)
}

func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, u models.User) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginSuccess, true)
	e.UserID, e.Email = u.ID, u.Email
	l.Log(ctx, e)
}

func (l *Logger) LoginFailedUserNotFound(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedUserNotFound, false)
	e.Email = email
	e.FailureReason = "user not found"
	l.Log(ctx, e)
}

func (l *Logger) LoginFailedWrongPassword(ctx context.Context, r *http.Request, u models.User) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedWrongPassword, false)
	e.UserID, e.Email = u.ID, u.Email
	e.FailureReason = "wrong password"
	l.Log(ctx, e)
}

func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedRateLimit, false)
	e.Email = email
	e.FailureReason = "rate limited"
	l.Log(ctx, e)
}

// --- Admin events ---

func (l *Logger) GLIGroupCreated(ctx context.Context, r *http.Request, g models.GLIGroup) {
	e := requestEvent(r, audit.CategoryAdmin, audit.EventGLIGroupCreated, true)
	e.Details = map[string]string{"group_id": g.ID, "groepnummer": g.GroupNumber}
	l.Log(ctx, e)
}

func (l *Logger) GLIGroupUpdated(ctx context.Context, r *http.Request, g models.GLIGroup) {
	e := requestEvent(r, audit.CategoryAdmin, audit.EventGLIGroupUpdated, true)
	e.Details = map[string]string{"group_id": g.ID, "groepnummer": g.GroupNumber}
	l.Log(ctx, e)
}

func (l *Logger) GLIGroupDeleted(ctx context.Context, r *http.Request, g models.GLIGroup) {
	e := requestEvent(r, audit.CategoryAdmin, audit.EventGLIGroupDeleted, true)
	e.Details = map[string]string{"group_id": g.ID, "groepnummer": g.GroupNumber}
	l.Log(ctx, e)
}

func (l *Logger) CatalogSeeded(ctx context.Context, r *http.Request, programs, coaches, faqs int) {
	e := requestEvent(r, audit.CategoryAdmin, audit.EventCatalogSeeded, true)
	e.Details = map[string]string{
		"programs": strconv.Itoa(programs),
		"coaches":  strconv.Itoa(coaches),
		"faqs":     strconv.Itoa(faqs),
	}
	l.Log(ctx, e)
}
