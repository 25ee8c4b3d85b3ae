// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// TOAST
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastWarning
	ToastError
)

// DefaultToastDuration is how long a toast stays before it is dismissed.
const DefaultToastDuration = 3 * time.Second

// ToastExpiredMsg is sent when the toast with ID should disappear.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a one-line notice shown in the footer until it expires.
// Only the latest toast is kept.
type Toast struct {
	id       int
	message  string
	kind     ToastKind
	duration time.Duration
}

// NewToast creates an empty toast holder.
func NewToast() *Toast {
	return &Toast{duration: DefaultToastDuration}
}

// SetDuration changes how long later toasts stay visible.
func (t *Toast) SetDuration(d time.Duration) {
	t.duration = d
}

// Show replaces the current message and returns the command that expires it.
func (t *Toast) Show(kind ToastKind, message string) tea.Cmd {
	t.id++
	t.kind = kind
	t.message = message

	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Expire clears the message if msg belongs to the toast still showing.
func (t *Toast) Expire(msg ToastExpiredMsg) {
	if msg.ID == t.id {
		t.message = ""
	}
}

// Message returns the current message, or "".
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast.
func (t *Toast) View() string {
	if t.message == "" {
		return ""
	}
	switch t.kind {
	case ToastError:
		return styles.RenderError(t.message)
	case ToastWarning:
		return styles.RenderWarning(t.message)
	default:
		return styles.RenderSuccess(t.message)
	}
}
