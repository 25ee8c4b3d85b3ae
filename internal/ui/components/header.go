// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title block shown above the tabs.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "Access Management",
		Subtitle: "Users, roles and the permissions they grant",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	lines := []string{h.theme.HeaderTitle.Render(h.Title)}
	if h.Subtitle != "" && h.theme.GetLayoutMode() != styles.LayoutNarrow {
		lines = append(lines, h.theme.HeaderSubtitle.Render(h.Subtitle))
	}
	return h.theme.Header.Render(strings.Join(lines, "\n"))
}

// =============================================================================
// TABS COMPONENT
// =============================================================================

// Tabs renders a row of tab labels with one active.
type Tabs struct {
	Labels []string
	Active int
	theme  *styles.Theme
}

// NewTabs creates a tab row. The first label is active.
func NewTabs(theme *styles.Theme, labels ...string) *Tabs {
	return &Tabs{Labels: labels, theme: theme}
}

// SetActive selects a tab by index. Out of range indexes are ignored.
func (t *Tabs) SetActive(i int) {
	if i >= 0 && i < len(t.Labels) {
		t.Active = i
	}
}

// View renders the tab row. The active tab is also marked with brackets so
// it stays visible without colour.
func (t *Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, t.theme.TabActive.Render("["+label+"]"))
		} else {
			parts = append(parts, t.theme.TabInactive.Render(" "+label+" "))
		}
	}
	return t.theme.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, parts...))
}
