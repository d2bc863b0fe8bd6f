// internal/app/system/inputval/email.go
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a bare RFC 5322 addr-spec.
// Display-name forms ("Name <a@b>") and embedded whitespace are rejected.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return dotAtomOK(s[:at]) && dotAtomOK(s[at+1:])
}

func dotAtomOK(part string) bool {
	return !strings.HasPrefix(part, ".") &&
		!strings.HasSuffix(part, ".") &&
		!strings.Contains(part, "..")
}
