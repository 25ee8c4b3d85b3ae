// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"slices"

	"github.com/jeranaias/accessdash/internal/rbac"
)

// Reduce applies a to s and returns the resulting state. s is not modified;
// slices that change are replaced, never written through.
func Reduce(s State, a Action) State {
	next, _ := reduce(s, a)
	return next
}

// reduce also returns a log line describing the change ("" for none).
func reduce(s State, a Action) (State, string) {
	switch a := a.(type) {
	case SelectTab:
		s.Tab = a.Tab
		return s, ""

	// =========================================================================
	// USERS
	// =========================================================================

	case OpenUserEditor:
		s.UserDialog = Creating{}
		return s, ""

	case EditUser:
		if _, ok := s.User(a.ID); !ok {
			return s, fmt.Sprintf("USER_EDIT_STALE | id=%d", a.ID)
		}
		s.UserDialog = Editing{ID: a.ID}
		return s, ""

	case SaveUser:
		return saveUser(s, a.Form)

	case CancelUser:
		s.UserDialog = Closed{}
		return s, ""

	// =========================================================================
	// ROLES
	// =========================================================================

	case OpenRoleEditor:
		s.RoleDialog = Creating{}
		return s, ""

	case EditRole:
		if _, ok := s.Role(a.ID); !ok {
			return s, fmt.Sprintf("ROLE_EDIT_STALE | id=%d", a.ID)
		}
		s.RoleDialog = Editing{ID: a.ID}
		return s, ""

	case SaveRole:
		return saveRole(s, a.Form)

	case CancelRole:
		s.RoleDialog = Closed{}
		return s, ""

	// =========================================================================
	// DELETION
	// =========================================================================

	case RequestDelete:
		s.DeleteDialog = Confirming{Target: a.Target}
		return s, ""

	case ConfirmDelete:
		return confirmDelete(s)

	case CancelDelete:
		s.DeleteDialog = Closed{}
		return s, ""
	}

	return s, fmt.Sprintf("ACTION_UNKNOWN | type=%T", a)
}

func saveUser(s State, f UserForm) (State, string) {
	editing, isEdit := s.UserDialog.(Editing)
	s.UserDialog = Closed{}

	if isEdit {
		i := s.userIndex(editing.ID)
		if i < 0 {
			return s, fmt.Sprintf("USER_SAVE_STALE | id=%d", editing.ID)
		}
		users := slices.Clone(s.Users)
		u := users[i]
		u.Name = f.Name
		u.Email = f.Email
		u.Role = f.Role
		if f.Status != "" {
			u.Status = f.Status
		}
		users[i] = u
		s.Users = users
		return s, fmt.Sprintf("USER_UPDATED | id=%d name=%q role=%q status=%s", u.ID, u.Name, u.Role, u.Status)
	}

	var id rbac.ID
	id, s.userIDs = s.userIDs.Next()
	status := f.Status
	if status == "" {
		status = rbac.StatusActive
	}
	u := rbac.User{ID: id, Name: f.Name, Email: f.Email, Role: f.Role, Status: status}
	s.Users = append(slices.Clip(s.Users), u)
	return s, fmt.Sprintf("USER_CREATED | id=%d name=%q role=%q status=%s", u.ID, u.Name, u.Role, u.Status)
}

func saveRole(s State, f RoleForm) (State, string) {
	editing, isEdit := s.RoleDialog.(Editing)
	s.RoleDialog = Closed{}

	if isEdit {
		i := s.roleIndex(editing.ID)
		if i < 0 {
			return s, fmt.Sprintf("ROLE_SAVE_STALE | id=%d", editing.ID)
		}
		roles := cloneRoles(s.Roles)
		roles[i].Name = f.Name
		roles[i].Permissions = f.Permissions.Clone()
		s.Roles = roles
		return s, fmt.Sprintf("ROLE_UPDATED | id=%d name=%q permissions=%v", roles[i].ID, roles[i].Name, roles[i].Permissions.Strings())
	}

	var id rbac.ID
	id, s.roleIDs = s.roleIDs.Next()
	r := rbac.Role{ID: id, Name: f.Name, Permissions: f.Permissions.Clone()}
	s.Roles = append(slices.Clip(s.Roles), r)
	return s, fmt.Sprintf("ROLE_CREATED | id=%d name=%q permissions=%v", r.ID, r.Name, r.Permissions.Strings())
}

func confirmDelete(s State) (State, string) {
	pending, ok := s.DeleteDialog.(Confirming)
	s.DeleteDialog = Closed{}
	if !ok {
		return s, ""
	}

	t := pending.Target
	switch t.Kind {
	case KindUser:
		if s.userIndex(t.ID) < 0 {
			return s, fmt.Sprintf("USER_DELETE_STALE | id=%d", t.ID)
		}
		s.Users = slices.DeleteFunc(slices.Clone(s.Users), func(u rbac.User) bool { return u.ID == t.ID })
		return s, fmt.Sprintf("USER_DELETED | id=%d", t.ID)

	case KindRole:
		if s.roleIndex(t.ID) < 0 {
			return s, fmt.Sprintf("ROLE_DELETE_STALE | id=%d", t.ID)
		}
		s.Roles = slices.DeleteFunc(cloneRoles(s.Roles), func(r rbac.Role) bool { return r.ID == t.ID })
		return s, fmt.Sprintf("ROLE_DELETED | id=%d unassigned_users=%d", t.ID, len(rbac.UnassignedUsers(s.Users, s.Roles)))
	}

	return s, fmt.Sprintf("DELETE_UNKNOWN_KIND | kind=%d id=%d", t.Kind, t.ID)
}
