// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rbac

// Role is a named set of permissions.
type Role struct {
	ID          ID
	Name        string
	Permissions PermissionSet
}

// Grants reports whether the role holds p.
func (r Role) Grants(p Permission) bool {
	return r.Permissions.Has(p)
}

// Clone returns a copy of r that shares no state with it.
func (r Role) Clone() Role {
	r.Permissions = r.Permissions.Clone()
	return r
}

// RoleNames returns the names of roles in order.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return names
}

// CountMembers returns how many users name role r.
func CountMembers(r Role, users []User) int {
	n := 0
	for _, u := range users {
		if u.Role == r.Name {
			n++
		}
	}
	return n
}
