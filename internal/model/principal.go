package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleInstaller Role = "INSTALLER"
	RoleViewer    Role = "VIEWER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsInstaller() bool {
	return p.Role == RoleInstaller
}

func (p Principal) IsViewer() bool {
	return p.Role == RoleViewer
}

// CanEdit reports whether the principal may mutate site data.
func (p Principal) CanEdit() bool {
	return p.IsAdmin() || p.IsInstaller()
}
