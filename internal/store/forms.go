// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "github.com/jeranaias/accessdash/internal/rbac"

// UserForm carries the editable fields of a user. No field is validated.
// An empty Status leaves the stored status unchanged on edit and means
// active on create.
type UserForm struct {
	Name   string
	Email  string
	Role   string
	Status rbac.Status
}

// RoleForm carries the editable fields of a role.
type RoleForm struct {
	Name        string
	Permissions rbac.PermissionSet
}

// Toggle flips one permission on the form.
func (f RoleForm) Toggle(p rbac.Permission) RoleForm {
	f.Permissions = f.Permissions.Toggle(p)
	return f
}

// UserForm returns the form the user editor starts with: the target's fields
// when editing, otherwise a blank active user.
func (s State) UserForm() UserForm {
	if u, ok := s.EditingUser(); ok {
		return UserForm{Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status}
	}
	return UserForm{Status: rbac.StatusActive}
}

// RoleForm returns the form the role editor starts with: the target's fields
// when editing, otherwise a blank role with no permissions.
func (s State) RoleForm() RoleForm {
	if r, ok := s.EditingRole(); ok {
		return RoleForm{Name: r.Name, Permissions: r.Permissions.Clone()}
	}
	return RoleForm{Permissions: rbac.NewPermissionSet()}
}
