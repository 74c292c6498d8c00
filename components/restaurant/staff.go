package restaurant

import "slices"

// Grants reports whether the role carries p.
func (r Role) Grants(p Permission) bool {
	return slices.Contains(r.Access, p)
}

// UnknownRole is shown for staff whose role no longer exists.
const UnknownRole = "Unknown"

// RoleName resolves a role id to its display name.
func RoleName(roles []Role, id string) string {
	if idx := roleIndex(roles, id); idx >= 0 {
		return roles[idx].Name
	}
	return UnknownRole
}

func roleIndex(roles []Role, id string) int {
	return slices.IndexFunc(roles, func(r Role) bool { return r.ID == id })
}

// PermissionRow is one permission across every role.
type PermissionRow struct {
	Permission Permission `json:"permission"`
	Granted    []bool     `json:"granted"`
}

// PermissionMatrix is the role x permission grid of the roles screen.
type PermissionMatrix struct {
	Roles []Role          `json:"roles"`
	Rows  []PermissionRow `json:"rows"`
}

// BuildPermissionMatrix lays out Permissions against roles.
func BuildPermissionMatrix(roles []Role) PermissionMatrix {
	matrix := PermissionMatrix{
		Roles: roles,
		Rows:  make([]PermissionRow, len(Permissions)),
	}
	for i, perm := range Permissions {
		row := PermissionRow{Permission: perm, Granted: make([]bool, len(roles))}
		for j, role := range roles {
			row.Granted[j] = role.Grants(perm)
		}
		matrix.Rows[i] = row
	}
	return matrix
}

func validPermission(p Permission) bool {
	return slices.Contains(Permissions, p)
}

func sortedAccess(access []Permission) []Permission {
	out := slices.Clone(access)
	slices.Sort(out)
	return slices.Compact(out)
}
