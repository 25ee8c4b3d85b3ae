// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/components"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// USER EDITOR
// =============================================================================

type userField int

const (
	userFieldName userField = iota
	userFieldEmail
	userFieldRole
	userFieldStatus
	userFieldButtons
	userFieldCount
)

// UserEditor is the add/edit user dialog. It keeps only widget state; the
// record itself is written by dispatching the action Update returns.
type UserEditor struct {
	name    *components.TextField
	email   *components.TextField
	roles   []string
	roleIdx int
	status  rbac.Status
	buttons components.ButtonRow
	focus   userField

	creating bool
	keys     DialogKeyMap
	help     help.Model
	theme    *styles.Theme
}

// NewUserEditor creates a closed user editor.
func NewUserEditor(theme *styles.Theme, keys DialogKeyMap, h help.Model) *UserEditor {
	return &UserEditor{
		name:  components.NewTextField(theme, "Name", "Full Name"),
		email: components.NewTextField(theme, "Email", "Email"),
		keys:  keys,
		help:  h,
		theme: theme,
	}
}

// Open loads a form into the editor. roleNames are the choices offered by
// the role selector.
func (e *UserEditor) Open(form store.UserForm, roleNames []string, creating bool) tea.Cmd {
	e.creating = creating
	e.name.SetValue(form.Name)
	e.email.SetValue(form.Email)

	e.roles = roleOptions(roleNames, form.Role)
	e.roleIdx = slices.Index(e.roles, form.Role)

	e.status = form.Status
	if e.status == "" {
		e.status = rbac.StatusActive
	}

	e.buttons = components.NewButtonRow("Cancel", e.confirmLabel())
	e.buttons.Selected = 1

	return e.setFocus(userFieldName)
}

// roleOptions returns "" (no role) followed by the role names. A current
// value that names no role is kept as an option so editing does not drop it.
func roleOptions(roleNames []string, current string) []string {
	opts := []string{""}
	if current != "" && !slices.Contains(roleNames, current) {
		opts = append(opts, current)
	}
	for _, name := range roleNames {
		if !slices.Contains(opts, name) {
			opts = append(opts, name)
		}
	}
	return opts
}

// Form returns the values currently entered.
func (e *UserEditor) Form() store.UserForm {
	return store.UserForm{
		Name:   e.name.Value(),
		Email:  e.email.Value(),
		Role:   e.roles[e.roleIdx],
		Status: e.status,
	}
}

func (e *UserEditor) title() string {
	if e.creating {
		return "Add New User"
	}
	return "Edit User"
}

func (e *UserEditor) description() string {
	if e.creating {
		return "Create a new user and assign their role"
	}
	return "Modify user details"
}

func (e *UserEditor) confirmLabel() string {
	if e.creating {
		return "Create User"
	}
	return "Save Changes"
}

func (e *UserEditor) setFocus(f userField) tea.Cmd {
	e.focus = f
	e.name.Blur()
	e.email.Blur()
	e.buttons.Focused = f == userFieldButtons

	switch f {
	case userFieldName:
		return e.name.Focus()
	case userFieldEmail:
		return e.email.Focus()
	}
	return nil
}

// Update handles a key press. It returns the store action to dispatch, if
// the key saved or cancelled the dialog.
func (e *UserEditor) Update(msg tea.KeyMsg) (store.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, e.keys.Cancel):
		return store.CancelUser{}, nil
	case key.Matches(msg, e.keys.NextField):
		return nil, e.setFocus((e.focus + 1) % userFieldCount)
	case key.Matches(msg, e.keys.PrevField):
		return nil, e.setFocus((e.focus + userFieldCount - 1) % userFieldCount)
	}

	switch e.focus {
	case userFieldName:
		if key.Matches(msg, e.keys.Confirm) {
			return nil, e.setFocus(userFieldEmail)
		}
		return nil, e.name.Update(msg)

	case userFieldEmail:
		if key.Matches(msg, e.keys.Confirm) {
			return nil, e.setFocus(userFieldRole)
		}
		return nil, e.email.Update(msg)

	case userFieldRole:
		switch {
		case key.Matches(msg, e.keys.Right), key.Matches(msg, e.keys.Toggle):
			e.roleIdx = (e.roleIdx + 1) % len(e.roles)
		case key.Matches(msg, e.keys.Left):
			e.roleIdx = (e.roleIdx - 1 + len(e.roles)) % len(e.roles)
		case key.Matches(msg, e.keys.Confirm):
			return nil, e.setFocus(userFieldStatus)
		}

	case userFieldStatus:
		switch {
		case key.Matches(msg, e.keys.Left), key.Matches(msg, e.keys.Right), key.Matches(msg, e.keys.Toggle):
			e.status = e.status.Toggle()
		case key.Matches(msg, e.keys.Confirm):
			return nil, e.setFocus(userFieldButtons)
		}

	case userFieldButtons:
		switch {
		case key.Matches(msg, e.keys.Left):
			e.buttons = e.buttons.Prev()
		case key.Matches(msg, e.keys.Right):
			e.buttons = e.buttons.Next()
		case key.Matches(msg, e.keys.Confirm):
			if e.buttons.SelectedLabel() == "Cancel" {
				return store.CancelUser{}, nil
			}
			return store.SaveUser{Form: e.Form()}, nil
		}
	}

	return nil, nil
}

// View renders the dialog centred in width x height.
func (e *UserEditor) View(width, height int) string {
	role := e.roles[e.roleIdx]
	if role == "" {
		role = "Select role"
	}

	fields := strings.Join([]string{
		e.name.View(),
		e.email.View(),
		e.selector("Role", role, e.focus == userFieldRole),
		e.selector("Status", components.StatusText(e.status), e.focus == userFieldStatus),
	}, "\n")

	return components.Modal(e.theme, e.theme.DialogBox, width, height,
		e.title(),
		e.theme.DialogText.Render(e.description()),
		fields,
		e.buttons.View(e.theme),
		e.help.View(e.keys),
	)
}

// selector renders a "< value >" choice field.
func (e *UserEditor) selector(label, value string, focused bool) string {
	labelStyle := e.theme.FieldLabel
	if focused {
		labelStyle = e.theme.FieldLabelFocused
		return labelStyle.Render(label) + e.theme.ShortcutKey.Render("< ") + e.theme.FieldValue.Render(value) + e.theme.ShortcutKey.Render(" >")
	}
	return labelStyle.Render(label) + "  " + e.theme.FieldValue.Render(value)
}
