package constant

import "strings"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleVendor  Role = "VENDOR"
)

// ParseRole maps a claim value onto the closed role set, case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleVendor:
		return RoleVendor, true
	}
	return "", false
}
