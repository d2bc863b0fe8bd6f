// internal/app/system/auth/middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/gliweb/internal/app/system/jsonutil"
	"github.com/dalemusser/gliweb/internal/app/system/timeouts"
	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

// ErrUserNotFound is returned by a UserLookup when no account has the email.
var ErrUserNotFound = errors.New("user not found")

// UserLookup loads the account a token refers to.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user resolved by RequireBearer.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// WithUser stores u on ctx the way RequireBearer does.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// Authenticator turns bearer tokens into users. Tokens are stateless;
// the user is re-read on every request so a deleted account stops
// working even while its token still verifies.
type Authenticator struct {
	Signer *Signer
	Users  UserLookup
	Log    *zap.Logger
}

func NewAuthenticator(signer *Signer, users UserLookup, logger *zap.Logger) *Authenticator {
	return &Authenticator{Signer: signer, Users: users, Log: logger}
}

// RequireBearer rejects requests without a valid token for an existing
// user with 401 and otherwise puts the user on the request context.
func (a *Authenticator) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "Not authenticated")
			return
		}

		claims, err := a.Signer.Parse(raw)
		if err != nil {
			a.Log.Debug("bearer token refused", zap.Error(err))
			unauthorized(w, "Authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		u, err := a.Users.GetByEmail(ctx, claims.Email)
		cancel()
		if err != nil {
			if !errors.Is(err, ErrUserNotFound) {
				a.Log.Error("bearer user lookup failed", zap.Error(err), zap.String("email", claims.Email))
			}
			unauthorized(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), &u)))
	})
}

// RequireRole must run after RequireBearer. Users whose role is not in
// allowed get 403.
func RequireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				unauthorized(w, "Not authenticated")
				return
			}
			for _, role := range allowed {
				if u.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			jsonutil.WriteError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, tok, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	jsonutil.WriteError(w, http.StatusUnauthorized, detail)
}
