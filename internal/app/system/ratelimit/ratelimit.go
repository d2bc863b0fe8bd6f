// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// Limiter counts requests per key in fixed windows. The first request for
// a key opens a window of the configured duration; once limit requests
// have been seen in it, further requests are refused until it expires.
// It is safe for concurrent use.
type Limiter struct {
	counts *cache.Cache
	limit  int
	window time.Duration
}

// New creates a limiter. cleanup is how often expired windows are purged;
// zero disables the background purge (expired windows are still ignored).
func New(limit int, window, cleanup time.Duration) *Limiter {
	return &Limiter{
		counts: cache.New(window, cleanup),
		limit:  limit,
		window: window,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}
	if err := l.counts.Add(key, 1, l.window); err == nil {
		return true
	}
	n, err := l.counts.IncrementInt(key, 1)
	if err != nil {
		// window expired between Add and IncrementInt
		l.counts.Set(key, 1, l.window)
		return true
	}
	return n <= l.limit
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.counts.Delete(key)
}

// ClientIP returns RemoteAddr without its port. Forwarding headers are
// not read here: the router's RealIP middleware already resolved them
// into RemoteAddr, so a client cannot rotate them to dodge the limit.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles login attempts per client IP and per email.
type LoginLimiter struct {
	ip    *Limiter
	email *Limiter
}

// NewLoginLimiter allows ipLimit attempts per IP per minute and half as
// many (at least one) per email address per five minutes.
func NewLoginLimiter(ipLimit int, cleanup time.Duration) *LoginLimiter {
	emailLimit := ipLimit / 2
	if emailLimit < 1 && ipLimit > 0 {
		emailLimit = 1
	}
	return &LoginLimiter{
		ip:    New(ipLimit, time.Minute, cleanup),
		email: New(emailLimit, 5*time.Minute, cleanup),
	}
}

// Check records an attempt and returns false with a user-facing reason
// when either limit is exceeded.
func (ll *LoginLimiter) Check(r *http.Request, email string) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}
	if email != "" && !ll.email.Allow(email) {
		return false, "Too many login attempts for this account. Please wait a few minutes."
	}
	return true, ""
}

// ResetEmail clears the per-email window after a successful login.
func (ll *LoginLimiter) ResetEmail(email string) {
	if email != "" {
		ll.email.Reset(email)
	}
}
