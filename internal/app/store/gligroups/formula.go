// internal/app/store/gligroups/formula.go
package gligroupstore

import "strings"

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Eq renders {field}='value' with value escaped, so a provider name like
// "Zorg 't Gooi" cannot close the string literal early.
func Eq(field, value string) string {
	return "{" + field + "}='" + quoteEscaper.Replace(value) + "'"
}

// And joins conditions. One condition is returned unchanged; none gives "".
func And(conds ...string) string {
	return join("AND", conds)
}

// Or is And's counterpart.
func Or(conds ...string) string {
	return join("OR", conds)
}

func join(op string, conds []string) string {
	switch len(conds) {
	case 0:
		return ""
	case 1:
		return conds[0]
	default:
		return op + "(" + strings.Join(conds, ", ") + ")"
	}
}
