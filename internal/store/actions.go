// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import "github.com/jeranaias/accessdash/internal/rbac"

// Action is a user-initiated change to State.
type Action interface {
	action()
}

// SelectTab switches the visible list.
type SelectTab struct{ Tab Tab }

// OpenUserEditor opens the user editor on a blank record.
type OpenUserEditor struct{}

// EditUser opens the user editor on an existing user.
type EditUser struct{ ID rbac.ID }

// SaveUser upserts the form and closes the user editor.
type SaveUser struct{ Form UserForm }

// CancelUser closes the user editor without changes.
type CancelUser struct{}

// OpenRoleEditor opens the role editor on a blank record.
type OpenRoleEditor struct{}

// EditRole opens the role editor on an existing role.
type EditRole struct{ ID rbac.ID }

// SaveRole upserts the form and closes the role editor.
type SaveRole struct{ Form RoleForm }

// CancelRole closes the role editor without changes.
type CancelRole struct{}

// RequestDelete opens the delete confirmation for target.
type RequestDelete struct{ Target Target }

// ConfirmDelete removes the pending target and closes the confirmation.
type ConfirmDelete struct{}

// CancelDelete closes the confirmation without changes.
type CancelDelete struct{}

func (SelectTab) action()      {}
func (OpenUserEditor) action() {}
func (EditUser) action()       {}
func (SaveUser) action()       {}
func (CancelUser) action()     {}
func (OpenRoleEditor) action() {}
func (EditRole) action()       {}
func (SaveRole) action()       {}
func (CancelRole) action()     {}
func (RequestDelete) action()  {}
func (ConfirmDelete) action()  {}
func (CancelDelete) action()   {}
