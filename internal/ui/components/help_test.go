// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

func TestHelpOverlay(t *testing.T) {
	h := NewHelpOverlay(styles.NewThemeFor(styles.ThemeDark), "# Keys\n\n- `n` add a record\n")

	if h.View() != "" {
		t.Error("hidden overlay should render nothing")
	}

	h.Toggle()
	if !h.IsVisible() {
		t.Fatal("Toggle() should show the overlay")
	}
	view := h.View()
	if !strings.Contains(view, "Keys") || !strings.Contains(view, "record") {
		t.Errorf("View() = %q", view)
	}

	h.SetSize(100, 30)
	if lines := strings.Count(h.View(), "\n") + 1; lines != 30 {
		t.Errorf("sized overlay has %d lines, want 30", lines)
	}

	h.Hide()
	if h.IsVisible() {
		t.Error("Hide() should hide the overlay")
	}
}

func TestToast(t *testing.T) {
	toast := NewToast()
	toast.SetDuration(time.Millisecond)

	cmd := toast.Show(ToastSuccess, "Copied jane@example.com")
	if !strings.Contains(toast.View(), "Copied jane@example.com") {
		t.Errorf("View() = %q", toast.View())
	}

	// A newer toast is not cleared by the older one's expiry.
	newer := toast.Show(ToastError, "Clipboard unavailable")
	toast.Expire(cmd().(ToastExpiredMsg))
	if toast.Message() != "Clipboard unavailable" {
		t.Errorf("stale expiry cleared the newer toast: %q", toast.Message())
	}

	toast.Expire(newer().(ToastExpiredMsg))
	if toast.View() != "" {
		t.Errorf("expired toast should render nothing, got %q", toast.View())
	}
}
