// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/components"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// ROLE EDITOR
// =============================================================================

type roleField int

const (
	roleFieldName roleField = iota
	roleFieldPermissions
	roleFieldButtons
	roleFieldCount
)

// RoleEditor is the create/edit role dialog.
type RoleEditor struct {
	name    *components.TextField
	perms   *components.PermissionChecklist
	buttons components.ButtonRow
	focus   roleField

	creating bool
	keys     DialogKeyMap
	help     help.Model
	theme    *styles.Theme
}

// NewRoleEditor creates a closed role editor.
func NewRoleEditor(theme *styles.Theme, keys DialogKeyMap, h help.Model) *RoleEditor {
	return &RoleEditor{
		name:  components.NewTextField(theme, "Name", "Role Name"),
		perms: components.NewPermissionChecklist(theme),
		keys:  keys,
		help:  h,
		theme: theme,
	}
}

// Open loads a form into the editor.
func (e *RoleEditor) Open(form store.RoleForm, creating bool) tea.Cmd {
	e.creating = creating
	e.name.SetValue(form.Name)
	e.perms.SetPermissions(form.Permissions)

	confirm := "Save Changes"
	if creating {
		confirm = "Create Role"
	}
	e.buttons = components.NewButtonRow("Cancel", confirm)
	e.buttons.Selected = 1

	return e.setFocus(roleFieldName, false)
}

// Form returns the values currently entered.
func (e *RoleEditor) Form() store.RoleForm {
	return store.RoleForm{
		Name:        e.name.Value(),
		Permissions: e.perms.Permissions(),
	}
}

func (e *RoleEditor) setFocus(f roleField, fromBelow bool) tea.Cmd {
	e.focus = f
	e.name.Blur()
	e.perms.Blur()
	e.buttons.Focused = f == roleFieldButtons

	switch f {
	case roleFieldName:
		return e.name.Focus()
	case roleFieldPermissions:
		e.perms.Focus(fromBelow)
	}
	return nil
}

func (e *RoleEditor) next() tea.Cmd {
	return e.setFocus((e.focus+1)%roleFieldCount, false)
}

func (e *RoleEditor) prev() tea.Cmd {
	return e.setFocus((e.focus+roleFieldCount-1)%roleFieldCount, true)
}

// Update handles a key press. It returns the store action to dispatch, if
// the key saved or cancelled the dialog.
func (e *RoleEditor) Update(msg tea.KeyMsg) (store.Action, tea.Cmd) {
	if key.Matches(msg, e.keys.Cancel) {
		return store.CancelRole{}, nil
	}

	// Arrow keys walk the checklist before leaving it.
	if e.focus == roleFieldPermissions {
		switch msg.String() {
		case "down":
			if e.perms.Down() {
				return nil, nil
			}
		case "up":
			if e.perms.Up() {
				return nil, nil
			}
		}
	}

	switch {
	case key.Matches(msg, e.keys.NextField):
		return nil, e.next()
	case key.Matches(msg, e.keys.PrevField):
		return nil, e.prev()
	}

	switch e.focus {
	case roleFieldName:
		if key.Matches(msg, e.keys.Confirm) {
			return nil, e.next()
		}
		return nil, e.name.Update(msg)

	case roleFieldPermissions:
		switch {
		case key.Matches(msg, e.keys.Toggle):
			e.perms.Toggle()
		case key.Matches(msg, e.keys.Confirm):
			return nil, e.next()
		}

	case roleFieldButtons:
		switch {
		case key.Matches(msg, e.keys.Left):
			e.buttons = e.buttons.Prev()
		case key.Matches(msg, e.keys.Right):
			e.buttons = e.buttons.Next()
		case key.Matches(msg, e.keys.Confirm):
			if e.buttons.SelectedLabel() == "Cancel" {
				return store.CancelRole{}, nil
			}
			return store.SaveRole{Form: e.Form()}, nil
		}
	}

	return nil, nil
}

// View renders the dialog centred in width x height.
func (e *RoleEditor) View(width, height int) string {
	title, desc := "Edit Role", "Modify role permissions"
	if e.creating {
		title, desc = "Create New Role", "Define a new role and its permissions"
	}

	label := e.theme.FieldLabel
	if e.focus == roleFieldPermissions {
		label = e.theme.FieldLabelFocused
	}

	return components.Modal(e.theme, e.theme.DialogBox, width, height,
		title,
		e.theme.DialogText.Render(desc),
		e.name.View()+"\n\n"+label.Render("Permissions")+"\n"+e.perms.View(),
		e.buttons.View(e.theme),
		e.help.View(e.keys),
	)
}
