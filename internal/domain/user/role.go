package user

import "strings"

// Role is a staff access level. Reads are public; writes are gated here so
// every collection shares the same policy.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Principal is the authenticated staff identity attached to a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEditor:
		return RoleEditor, true
	case RoleViewer:
		return RoleViewer, true
	default:
		return "", false
	}
}

// CanWrite reports whether the role may create or update documents.
func CanWrite(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	default:
		return false
	}
}

// CanDelete reports whether the role may delete documents.
func CanDelete(r Role) bool {
	return r == RoleAdmin
}
