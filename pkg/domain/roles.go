package domain

import "strings"

// Role is the closed set of portal roles. Authorization decisions only ever
// compare against these constants; unknown labels never grant access.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleTerritoryManager Role = "territory_manager"
	RoleDealer           Role = "dealer"
	RoleFinance          Role = "finance"
	RoleEmployee         Role = "employee"
)

var knownRoles = map[Role]string{
	RoleAdmin:            "Admin",
	RoleTerritoryManager: "Territory Manager",
	RoleDealer:           "Dealer",
	RoleFinance:          "Finance",
	RoleEmployee:         "Employee",
}

// ParseRole maps a stored label to a Role. The boolean is false for labels
// outside the closed set; callers at the authorization boundary must treat
// that as a denial, never as a default role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	_, ok := knownRoles[r]
	return r, ok
}

// DisplayName returns the human label for a role. Unknown roles get a
// title-cased fallback for presentation only; access decisions must go
// through ParseRole.
func DisplayName(r Role) string {
	if name, ok := knownRoles[r]; ok {
		return name
	}
	parts := strings.FieldsFunc(string(r), func(c rune) bool {
		return c == '_' || c == '-' || c == ' '
	})
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
