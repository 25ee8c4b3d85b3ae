// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Purple":        Purple,
		"Cyan":          Cyan,
		"Emerald":       Emerald,
		"Rose":          Rose,
		"RoseDeep":      RoseDeep,
		"Amber":         Amber,
		"Surface":       Surface,
		"SurfaceDim":    SurfaceDim,
		"Overlay":       Overlay,
		"OverlayDim":    OverlayDim,
		"TextPrimary":   TextPrimary,
		"TextSecondary": TextSecondary,
		"TextMuted":     TextMuted,
		"TextInverse":   TextInverse,
		"SelectionBg":   SelectionBg,
	}

	for name, c := range colors {
		t.Run(name, func(t *testing.T) {
			if !strings.HasPrefix(c.Light, "#") || len(c.Light) != 7 {
				t.Errorf("%s.Light = %q, want #RRGGBB", name, c.Light)
			}
			if !strings.HasPrefix(c.Dark, "#") || len(c.Dark) != 7 {
				t.Errorf("%s.Dark = %q, want #RRGGBB", name, c.Dark)
			}
		})
	}
}

func TestRenderHelpersIncludeIndicators(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("copied")
			if !strings.Contains(out, tt.indicator) {
				t.Errorf("output %q missing indicator %q", out, tt.indicator)
			}
			if !strings.Contains(out, "copied") {
				t.Errorf("output %q missing message", out)
			}
		})
	}
}
