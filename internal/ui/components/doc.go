// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the accessdash TUI.

Components are built on Bubble Tea, Bubbles and Lip Gloss and take their
styles from a *styles.Theme.

# Layout

Header (header.go) - Title block above the tabs.
Tabs (header.go) - Tab row with one active tab.
Table (table.go) - Column layout using display widths, with a selected row.

# Input

TextField (input.go) - Labelled textinput used by the editor dialogs.
PermissionChecklist (permission.go) - One checkbox per permission.
ButtonRow (dialog.go) - Dialog buttons, optionally with a destructive one.

# Feedback

StatusBadge, RoleBadge, PermissionChips (badge.go) - Cell renderers.
Toast (toast.go) - Footer notice that expires after a few seconds.
HelpOverlay (help.go) - Markdown key reference rendered with Glamour.
Modal (dialog.go) - Centred dialog frame.

# Usage

	table := components.NewTable(theme,
	    components.Column{Title: "Name", Width: 20},
	    components.Column{Title: "Email", Width: 28},
	)
	table.SetRows(rows)
	view := table.View()
*/
package components
