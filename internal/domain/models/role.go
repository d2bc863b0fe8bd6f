// internal/domain/models/role.go
package models

import "strings"

// Role is a user category. It decides which role-scoped
// resources, events and FAQs a caller can see.
type Role string

const (
	RoleInwoner      Role = "inwoner"
	RoleDeelnemer    Role = "deelnemer"
	RoleVerwijzer    Role = "verwijzer"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleInwoner, RoleDeelnemer, RoleVerwijzer, RoleProfessional, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole trims and lowercases s and returns the matching role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}
