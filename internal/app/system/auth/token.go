// internal/app/system/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/gliweb/internal/domain/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSecret is the placeholder signing secret used when none is
// configured. Production config validation refuses it.
const DefaultSecret = "your-secret-key"

// ErrInvalidToken covers every reason a bearer token is refused:
// bad signature, wrong algorithm, malformed, expired or missing claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims is what a token asserts about its holder.
type Claims struct {
	Email string
	Role  models.Role
}

// Signer issues and verifies HS256 tokens carrying {email, role}.
// With a zero TTL tokens carry no exp claim and never expire.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is empty")
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for u.
func (s *Signer) Issue(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"email": u.Email,
		"role":  string(u.Role),
	}
	if s.ttl > 0 {
		now := s.now()
		claims["iat"] = now.Unix()
		claims["exp"] = now.Add(s.ttl).Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tok, nil
}

// Parse verifies raw and returns its claims. Any failure wraps ErrInvalidToken.
func (s *Signer) Parse(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	if email == "" {
		return Claims{}, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	role, _ := mc["role"].(string)
	return Claims{Email: email, Role: models.Role(role)}, nil
}
