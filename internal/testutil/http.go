package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/gliweb/internal/app/system/auth"
	"github.com/dalemusser/gliweb/internal/domain/models"
)

// TestSecret signs tokens in handler tests.
const TestSecret = "test-signing-secret"

// NewSigner returns a Signer using TestSecret and no expiry.
func NewSigner(t *testing.T) *auth.Signer {
	t.Helper()
	s, err := auth.NewSigner(TestSecret, 0)
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}
	return s
}

// TokenFor issues a TestSecret token for u.
func TokenFor(t *testing.T, u models.User) string {
	t.Helper()
	tok, err := NewSigner(t).Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return tok
}

// NewJSONRequest builds a request with body sent as application/json.
func NewJSONRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// WithBearer sets the Authorization header.
func WithBearer(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t testing.TB, expected int) {
	t.Helper()
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d (body %s)", r.Code, expected, r.Body.String())
	}
}

// AssertContains checks that the body contains expected.
func (r *ResponseRecorder) AssertContains(t testing.TB, expected string) {
	t.Helper()
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body %q does not contain %q", r.Body.String(), expected)
	}
}

// Decode unmarshals the JSON body into v.
func (r *ResponseRecorder) Decode(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", r.Body.String(), err)
	}
}

// Detail returns the "detail" string of an error body.
func (r *ResponseRecorder) Detail(t testing.TB) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	r.Decode(t, &body)
	return body.Detail
}
