// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewThemeFor.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the dashboard.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// Compact drops blank spacer lines
	Compact bool

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App            lipgloss.Style
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// TAB STYLES
	// ==========================================================================

	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// ==========================================================================
	// TABLE STYLES
	// ==========================================================================

	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableEmpty       lipgloss.Style
	ActionHint       lipgloss.Style

	// ==========================================================================
	// BADGE STYLES
	// ==========================================================================

	BadgeActive    lipgloss.Style
	BadgeInactive  lipgloss.Style
	BadgeMissing   lipgloss.Style
	PermissionChip lipgloss.Style

	// ==========================================================================
	// SEARCH STYLES
	// ==========================================================================

	SearchBox        lipgloss.Style
	SearchBoxFocused lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	DialogBox          lipgloss.Style
	DialogDangerBox    lipgloss.Style
	DialogTitle        lipgloss.Style
	DialogText         lipgloss.Style
	FieldLabel         lipgloss.Style
	FieldLabelFocused  lipgloss.Style
	FieldValue         lipgloss.Style
	Button             lipgloss.Style
	ButtonActive       lipgloss.Style
	ButtonDanger       lipgloss.Style
	ButtonDangerActive lipgloss.Style
	Checkbox           lipgloss.Style
	CheckboxChecked    lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputCursor      lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	HelpOverlay  lipgloss.Style
}

// NewTheme creates a theme that follows the terminal background.
func NewTheme() *Theme {
	return NewThemeFor(ThemeAuto)
}

// NewThemeFor creates a theme for "auto", "dark" or "light". Unknown names
// behave like "auto". A fixed choice is also pushed to lipgloss so that
// adaptive colours resolve the same way everywhere.
func NewThemeFor(name string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(name) {
	case ThemeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ThemeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Foreground(TextPrimary).
		MarginBottom(1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Tabs
	t.TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	// Table
	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(OverlayDim)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)

	t.TableEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	t.ActionHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Badges
	t.BadgeActive = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.BadgeInactive = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.BadgeMissing = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.PermissionChip = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 1).
		MarginRight(1)

	// Search
	t.SearchBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.SearchBoxFocused = t.SearchBox.
		BorderForeground(Purple)

	// Dialogs
	t.DialogBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.DialogDangerBox = t.DialogBox.
		BorderForeground(Rose)

	t.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	t.DialogText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(12)

	t.FieldLabelFocused = t.FieldLabel.
		Foreground(Purple).
		Bold(true)

	t.FieldValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(2)

	t.ButtonActive = t.Button.
		Foreground(TextInverse).
		Background(Purple).
		Bold(true)

	t.ButtonDanger = t.Button.
		Foreground(Rose)

	t.ButtonDangerActive = t.Button.
		Foreground(TextInverse).
		Background(RoseDeep).
		Bold(true)

	t.Checkbox = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CheckboxChecked = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	// Input
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputCursor = lipgloss.NewStyle().
		Foreground(Purple)

	// Footer
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		MarginTop(1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HelpOverlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// Spacer returns the gap placed between sections: a blank line, or nothing
// in compact mode.
func (t *Theme) Spacer() string {
	if t.Compact {
		return ""
	}
	return "\n"
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
