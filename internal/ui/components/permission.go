// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// PERMISSION CHECKLIST
// =============================================================================

// PermissionChecklist shows one checkbox per permission in the catalogue.
type PermissionChecklist struct {
	perms   []rbac.Permission
	set     rbac.PermissionSet
	cursor  int
	focused bool
	theme   *styles.Theme
}

// NewPermissionChecklist creates a checklist over rbac.AllPermissions.
func NewPermissionChecklist(theme *styles.Theme) *PermissionChecklist {
	return &PermissionChecklist{
		perms: rbac.AllPermissions(),
		set:   rbac.NewPermissionSet(),
		theme: theme,
	}
}

// SetPermissions replaces the checked permissions and resets the cursor.
func (c *PermissionChecklist) SetPermissions(set rbac.PermissionSet) {
	c.set = set.Clone()
	c.cursor = 0
}

// Permissions returns the checked permissions.
func (c *PermissionChecklist) Permissions() rbac.PermissionSet {
	return c.set.Clone()
}

// Cursor returns the permission under the cursor.
func (c *PermissionChecklist) Cursor() rbac.Permission {
	return c.perms[c.cursor]
}

// Toggle flips the permission under the cursor.
func (c *PermissionChecklist) Toggle() {
	c.set = c.set.Toggle(c.perms[c.cursor])
}

// Up moves the cursor up. It returns false when already on the first row.
func (c *PermissionChecklist) Up() bool {
	if c.cursor == 0 {
		return false
	}
	c.cursor--
	return true
}

// Down moves the cursor down. It returns false when already on the last row.
func (c *PermissionChecklist) Down() bool {
	if c.cursor >= len(c.perms)-1 {
		return false
	}
	c.cursor++
	return true
}

// Focus focuses the checklist, placing the cursor on the first or last row.
func (c *PermissionChecklist) Focus(fromBelow bool) {
	c.focused = true
	if fromBelow {
		c.cursor = len(c.perms) - 1
	} else {
		c.cursor = 0
	}
}

// Blur removes focus from the checklist
func (c *PermissionChecklist) Blur() {
	c.focused = false
}

// Focused returns whether the checklist is focused
func (c *PermissionChecklist) Focused() bool {
	return c.focused
}

// View renders the checklist.
func (c *PermissionChecklist) View() string {
	var b strings.Builder
	for i, p := range c.perms {
		pointer := "  "
		if c.focused && i == c.cursor {
			pointer = c.theme.ShortcutKey.Render("> ")
		}
		box, style := "[ ]", c.theme.Checkbox
		if c.set.Has(p) {
			box, style = "[x]", c.theme.CheckboxChecked
		}
		b.WriteString(pointer)
		b.WriteString(style.Render(box + " " + p.String()))
		if i < len(c.perms)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
