// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY
// =============================================================================

// HelpOverlay shows a markdown key reference rendered with glamour.
type HelpOverlay struct {
	markdown string

	// rendered caches the last render; it is redone when the wrap width changes.
	rendered      string
	renderedWidth int

	visible bool
	width   int
	height  int
	theme   *styles.Theme
}

// NewHelpOverlay creates an overlay for the given markdown.
func NewHelpOverlay(theme *styles.Theme, markdown string) *HelpOverlay {
	return &HelpOverlay{markdown: markdown, theme: theme}
}

// Show displays the overlay.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle flips visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize updates the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the overlay centred in the terminal.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	wrap := 72
	if h.width > 0 && h.width-6 < wrap {
		wrap = h.width - 6
	}
	if wrap < 30 {
		wrap = 30
	}

	box := h.theme.HelpOverlay.Render(strings.TrimSpace(h.render(wrap)))
	if h.width > 0 && h.height > 0 {
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// render converts the markdown, falling back to the raw text if glamour fails.
func (h *HelpOverlay) render(wrap int) string {
	if h.rendered != "" && h.renderedWidth == wrap {
		return h.rendered
	}

	style := "light"
	if h.theme.IsDark {
		style = "dark"
	}

	out := h.markdown
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if r, err := renderer.Render(h.markdown); err == nil {
			out = r
		}
	}

	h.rendered = out
	h.renderedWidth = wrap
	return out
}
