// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email trims and lowercases an address so lookups and the unique
// index agree on one spelling.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and keeps case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Text trims a free-text field.
func Text(s string) string {
	return strings.TrimSpace(s)
}
