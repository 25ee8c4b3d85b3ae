// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// BUTTON ROW
// =============================================================================

// ButtonRow is a horizontal set of buttons with one selected.
type ButtonRow struct {
	Labels   []string
	Selected int
	// Danger is the index of a destructive button, or -1.
	Danger int
	// Focused reports whether keyboard focus is on the row.
	Focused bool
}

// NewButtonRow creates a button row with the first button selected.
func NewButtonRow(labels ...string) ButtonRow {
	return ButtonRow{Labels: labels, Danger: -1}
}

// Next selects the next button, wrapping around.
func (b ButtonRow) Next() ButtonRow {
	if n := len(b.Labels); n > 0 {
		b.Selected = (b.Selected + 1) % n
	}
	return b
}

// Prev selects the previous button, wrapping around.
func (b ButtonRow) Prev() ButtonRow {
	if n := len(b.Labels); n > 0 {
		b.Selected = (b.Selected - 1 + n) % n
	}
	return b
}

// SelectedLabel returns the label of the selected button.
func (b ButtonRow) SelectedLabel() string {
	if b.Selected < 0 || b.Selected >= len(b.Labels) {
		return ""
	}
	return b.Labels[b.Selected]
}

// View renders the row. The selected button is only highlighted while the
// row has focus.
func (b ButtonRow) View(theme *styles.Theme) string {
	buttons := make([]string, len(b.Labels))
	for i, label := range b.Labels {
		active := b.Focused && i == b.Selected
		style := theme.Button
		switch {
		case i == b.Danger && active:
			style = theme.ButtonDangerActive
		case i == b.Danger:
			style = theme.ButtonDanger
		case active:
			style = theme.ButtonActive
		}
		if active {
			label = "> " + label
		}
		buttons[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// =============================================================================
// MODAL FRAME
// =============================================================================

// Modal renders a titled box and centres it in width x height. With no size
// yet the box is returned as is.
func Modal(theme *styles.Theme, box lipgloss.Style, width, height int, title string, sections ...string) string {
	var content strings.Builder
	content.WriteString(theme.DialogTitle.Render(title))
	for _, s := range sections {
		if s == "" {
			continue
		}
		content.WriteString("\n")
		content.WriteString(s)
		content.WriteString("\n")
	}

	boxWidth := 56
	if width > 0 && width < boxWidth+4 {
		boxWidth = width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	rendered := box.Width(boxWidth).Render(strings.TrimSuffix(content.String(), "\n"))

	if width > 0 && height > 0 {
		return lipgloss.Place(
			width, height,
			lipgloss.Center, lipgloss.Center,
			rendered,
		)
	}
	return rendered
}
