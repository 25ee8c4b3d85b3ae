// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the accessdash TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The [ui].theme setting can pin either variant.

# Color System (colors.go)

  - Purple - Active tab, focused fields, primary buttons
  - Cyan - Headings and key hints
  - Emerald - Active status, granted permissions
  - Amber - Users whose role no longer exists
  - Rose - Delete confirmation

Status is never shown by colour alone: badges carry a shape from
StatusIndicators as well.

# Theme (theme.go)

Theme groups the lipgloss styles used by the dashboard: tabs, tables,
badges, dialogs, buttons and the footer.

	theme := styles.NewThemeFor(cfg.UI.Theme)
	theme.SetSize(msg.Width, msg.Height)
	title := theme.DialogTitle.Render("Edit User")
*/
package styles
