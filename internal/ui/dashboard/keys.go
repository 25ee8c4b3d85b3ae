// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the list views.
type KeyMap struct {
	NextTab  key.Binding
	UsersTab key.Binding
	RolesTab key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings for the dashboard.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch tab"),
		),
		UsersTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "users"),
		),
		RolesTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "roles"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next row"),
		),
		Add: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy email"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.UsersTab, k.RolesTab},
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Copy},
		{k.Search, k.Help, k.Quit},
	}
}

// =============================================================================
// DIALOG KEY MAP
// =============================================================================

// DialogKeyMap defines the bindings used inside the editor and confirmation
// dialogs.
type DialogKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultDialogKeyMap returns the default dialog bindings.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown under a dialog.
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Toggle, k.Confirm, k.Cancel}
}

// FullHelp returns the dialog bindings in one group.
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.PrevField, k.Left, k.Right}}
}

// =============================================================================
// HELP TEXT
// =============================================================================

// helpMarkdown is rendered by the help overlay.
const helpMarkdown = `# Keyboard reference

## Lists

| Key | Action |
|-----|--------|
| ` + "`tab`" + ` / ` + "`1`" + ` / ` + "`2`" + ` | Switch between Users and Roles |
| ` + "`up`" + ` / ` + "`down`" + ` | Move the selection |
| ` + "`n`" + ` | Add a user or role |
| ` + "`e`" + ` / ` + "`enter`" + ` | Edit the selected row |
| ` + "`d`" + ` | Delete the selected row |
| ` + "`y`" + ` | Copy the selected user's email |
| ` + "`/`" + ` | Focus the search box |
| ` + "`q`" + ` | Quit |
| ` + "`ctrl+c`" + ` | Quit, also from a dialog or the search box |

## Dialogs

| Key | Action |
|-----|--------|
| ` + "`tab`" + ` / ` + "`shift+tab`" + ` | Move between fields |
| ` + "`left`" + ` / ` + "`right`" + ` | Change role, status or button |
| ` + "`space`" + ` | Toggle a permission or the status |
| ` + "`enter`" + ` | Press the focused button |
| ` + "`esc`" + ` | Cancel |

Deleting a role leaves its users untouched; they are shown with a
*(missing)* marker until they are given another role. Changes live in memory
only and are gone when the dashboard exits.

Press ` + "`?`" + ` or ` + "`esc`" + ` to close this help.
`
