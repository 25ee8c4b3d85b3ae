// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestNewHeader(t *testing.T) {
	h := NewHeader(styles.NewTheme())

	if h == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if h.Title != "Access Management" {
		t.Errorf("NewHeader() Title = %q, want %q", h.Title, "Access Management")
	}
}

func TestHeaderView(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)

	theme.SetSize(120, 40)
	view := h.View()
	if !strings.Contains(view, "Access Management") {
		t.Errorf("View() missing title: %q", view)
	}
	if !strings.Contains(view, "Users, roles") {
		t.Errorf("View() missing subtitle on a wide terminal: %q", view)
	}

	theme.SetSize(40, 20)
	if strings.Contains(h.View(), "Users, roles") {
		t.Error("View() should drop the subtitle on a narrow terminal")
	}
}

// =============================================================================
// TABS TESTS
// =============================================================================

func TestTabsView(t *testing.T) {
	tabs := NewTabs(styles.NewTheme(), "Users", "Roles")

	if view := tabs.View(); !strings.Contains(view, "[Users]") {
		t.Errorf("first tab should be active: %q", view)
	}

	tabs.SetActive(1)
	view := tabs.View()
	if !strings.Contains(view, "[Roles]") || strings.Contains(view, "[Users]") {
		t.Errorf("second tab should be active: %q", view)
	}

	tabs.SetActive(5)
	if tabs.Active != 1 {
		t.Errorf("out of range SetActive changed Active to %d", tabs.Active)
	}
}
