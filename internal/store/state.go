// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"slices"
	"strings"

	"github.com/jeranaias/accessdash/internal/rbac"
)

// =============================================================================
// TABS
// =============================================================================

// Tab selects which list the dashboard shows.
type Tab int

const (
	TabUsers Tab = iota
	TabRoles
)

// String returns the tab's config name.
func (t Tab) String() string {
	switch t {
	case TabUsers:
		return "users"
	case TabRoles:
		return "roles"
	default:
		return "unknown"
	}
}

// Next cycles to the following tab.
func (t Tab) Next() Tab {
	if t == TabUsers {
		return TabRoles
	}
	return TabUsers
}

// ParseTab accepts "users" or "roles", case-insensitively.
func ParseTab(s string) (Tab, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "users":
		return TabUsers, true
	case "roles":
		return TabRoles, true
	}
	return TabUsers, false
}

// =============================================================================
// DIALOG STATES
// =============================================================================

// EditorState is the state of the user or role editor: Closed, Creating or
// Editing.
type EditorState interface {
	editorState()
}

// DeleteState is the state of the delete confirmation: Closed or Confirming.
type DeleteState interface {
	deleteState()
}

// Closed is a dialog that is not shown.
type Closed struct{}

// Creating is an editor open on a blank record.
type Creating struct{}

// Editing is an editor open on an existing record.
type Editing struct {
	ID rbac.ID
}

// Confirming is the delete dialog waiting for confirmation.
type Confirming struct {
	Target Target
}

func (Closed) editorState()   {}
func (Creating) editorState() {}
func (Editing) editorState()  {}

func (Closed) deleteState()     {}
func (Confirming) deleteState() {}

// IsOpen reports whether an editor is showing.
func IsOpen(e EditorState) bool {
	switch e.(type) {
	case Creating, Editing:
		return true
	}
	return false
}

// Kind says which collection a delete target lives in.
type Kind int

const (
	KindUser Kind = iota
	KindRole
)

func (k Kind) String() string {
	if k == KindRole {
		return "role"
	}
	return "user"
}

// Target names the record a delete confirmation is about.
type Target struct {
	Kind Kind
	ID   rbac.ID
}

// =============================================================================
// STATE
// =============================================================================

// State is the whole dashboard state. Treat it as a value: use Reduce to
// derive a new one.
type State struct {
	Users []rbac.User
	Roles []rbac.Role
	Tab   Tab

	UserDialog   EditorState
	RoleDialog   EditorState
	DeleteDialog DeleteState

	userIDs rbac.IDAllocator
	roleIDs rbac.IDAllocator
}

// New builds the initial state from seed collections. The seeds are copied.
func New(users []rbac.User, roles []rbac.Role, tab Tab) State {
	s := State{
		Users:        slices.Clone(users),
		Roles:        cloneRoles(roles),
		Tab:          tab,
		UserDialog:   Closed{},
		RoleDialog:   Closed{},
		DeleteDialog: Closed{},
		userIDs:      rbac.NewIDAllocator(rbac.UserIDs(users)...),
		roleIDs:      rbac.NewIDAllocator(rbac.RoleIDs(roles)...),
	}
	if s.Users == nil {
		s.Users = []rbac.User{}
	}
	return s
}

// User looks up a user by id.
func (s State) User(id rbac.ID) (rbac.User, bool) {
	i := s.userIndex(id)
	if i < 0 {
		return rbac.User{}, false
	}
	return s.Users[i], true
}

// Role looks up a role by id.
func (s State) Role(id rbac.ID) (rbac.Role, bool) {
	i := s.roleIndex(id)
	if i < 0 {
		return rbac.Role{}, false
	}
	return s.Roles[i].Clone(), true
}

// EditingUser returns the user the editor is open on, if any.
func (s State) EditingUser() (rbac.User, bool) {
	if e, ok := s.UserDialog.(Editing); ok {
		return s.User(e.ID)
	}
	return rbac.User{}, false
}

// EditingRole returns the role the editor is open on, if any.
func (s State) EditingRole() (rbac.Role, bool) {
	if e, ok := s.RoleDialog.(Editing); ok {
		return s.Role(e.ID)
	}
	return rbac.Role{}, false
}

// PendingDelete returns the target awaiting confirmation, if any.
func (s State) PendingDelete() (Target, bool) {
	if c, ok := s.DeleteDialog.(Confirming); ok {
		return c.Target, true
	}
	return Target{}, false
}

// NextUserID returns the id the next created user will get.
func (s State) NextUserID() rbac.ID {
	return s.userIDs.Peek()
}

// NextRoleID returns the id the next created role will get.
func (s State) NextRoleID() rbac.ID {
	return s.roleIDs.Peek()
}

// AnyDialogOpen reports whether a modal is showing.
func (s State) AnyDialogOpen() bool {
	_, deleting := s.DeleteDialog.(Confirming)
	return IsOpen(s.UserDialog) || IsOpen(s.RoleDialog) || deleting
}

func (s State) userIndex(id rbac.ID) int {
	return slices.IndexFunc(s.Users, func(u rbac.User) bool { return u.ID == id })
}

func (s State) roleIndex(id rbac.ID) int {
	return slices.IndexFunc(s.Roles, func(r rbac.Role) bool { return r.ID == id })
}

func cloneRoles(roles []rbac.Role) []rbac.Role {
	out := make([]rbac.Role, len(roles))
	for i, r := range roles {
		out[i] = r.Clone()
	}
	return out
}
