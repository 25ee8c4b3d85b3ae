// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// TEXT INPUT HELPERS
// =============================================================================

// NewStyledInput returns a textinput styled with the theme.
func NewStyledInput(theme *styles.Theme, prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 32

	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = theme.InputCursor

	return ti
}

// =============================================================================
// TEXT FIELD COMPONENT
// =============================================================================

// TextField is a labelled single-line input used in the editor dialogs.
type TextField struct {
	Label string
	input textinput.Model
	theme *styles.Theme
}

// NewTextField creates a new TextField.
func NewTextField(theme *styles.Theme, label, placeholder string) *TextField {
	return &TextField{
		Label: label,
		input: NewStyledInput(theme, "", placeholder),
		theme: theme,
	}
}

// Focus focuses the input
func (f *TextField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input
func (f *TextField) Blur() {
	f.input.Blur()
}

// Focused returns whether the input is focused
func (f *TextField) Focused() bool {
	return f.input.Focused()
}

// Value returns the current input value
func (f *TextField) Value() string {
	return f.input.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

// SetWidth sets the visible width of the input.
func (f *TextField) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	f.input.Width = width
}

// Update handles input updates
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label and the input on one line.
func (f *TextField) View() string {
	label := f.theme.FieldLabel
	if f.Focused() {
		label = f.theme.FieldLabelFocused
	}
	return label.Render(f.Label) + f.input.View()
}
