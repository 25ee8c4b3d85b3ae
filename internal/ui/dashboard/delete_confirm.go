// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/components"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// DELETE CONFIRMATION
// =============================================================================

// DeleteConfirm is the shared "Are you sure?" dialog for users and roles.
type DeleteConfirm struct {
	kind    store.Kind
	label   string
	members int
	buttons components.ButtonRow

	keys  DialogKeyMap
	theme *styles.Theme
}

// NewDeleteConfirm creates a closed confirmation dialog.
func NewDeleteConfirm(theme *styles.Theme, keys DialogKeyMap) *DeleteConfirm {
	return &DeleteConfirm{keys: keys, theme: theme}
}

// Open prepares the dialog for a record. label names the record; members
// is how many users hold a role being deleted.
func (d *DeleteConfirm) Open(kind store.Kind, label string, members int) {
	d.kind = kind
	d.label = label
	d.members = members
	d.buttons = components.NewButtonRow("Cancel", "Delete")
	d.buttons.Danger = 1
	d.buttons.Focused = true
}

// Update handles a key press and returns ConfirmDelete, CancelDelete or nil.
func (d *DeleteConfirm) Update(msg tea.KeyMsg) store.Action {
	switch {
	case key.Matches(msg, d.keys.Cancel):
		return store.CancelDelete{}
	case key.Matches(msg, d.keys.Left), key.Matches(msg, d.keys.PrevField):
		d.buttons = d.buttons.Prev()
	case key.Matches(msg, d.keys.Right), key.Matches(msg, d.keys.NextField):
		d.buttons = d.buttons.Next()
	case key.Matches(msg, d.keys.Confirm):
		if d.buttons.SelectedLabel() == "Delete" {
			return store.ConfirmDelete{}
		}
		return store.CancelDelete{}
	}
	return nil
}

// View renders the dialog centred in width x height.
func (d *DeleteConfirm) View(width, height int) string {
	body := fmt.Sprintf("This action cannot be undone. This will permanently delete the %s.", d.kind)

	var detail string
	if d.label != "" {
		detail = d.theme.FieldValue.Render(fmt.Sprintf("%s: %s", d.kind, d.label))
	}
	if d.kind == store.KindRole && d.members > 0 {
		detail += "\n" + d.theme.BadgeMissing.Render(
			components.Pluralize(d.members, "user keeps", "users keep")+" this role name and will show it as missing.")
	}

	return components.Modal(d.theme, d.theme.DialogDangerBox, width, height,
		"Are you sure?",
		d.theme.DialogText.Render(body),
		detail,
		d.buttons.View(d.theme),
	)
}
