// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// BADGES
// =============================================================================

// StatusText is the plain form of a status badge.
func StatusText(s rbac.Status) string {
	if s == rbac.StatusActive {
		return styles.StatusIndicators.Active + " " + s.Label()
	}
	return styles.StatusIndicators.Idle + " " + s.Label()
}

// StatusBadge renders a user status with shape and colour.
func StatusBadge(theme *styles.Theme, s rbac.Status) string {
	if s == rbac.StatusActive {
		return theme.BadgeActive.Render(StatusText(s))
	}
	return theme.BadgeInactive.Render(StatusText(s))
}

// MissingRoleSuffix marks a role name that matches no role.
const MissingRoleSuffix = " (missing)"

// RoleText is the plain form of a role reference.
func RoleText(role string, missing bool) string {
	if role == "" {
		return "-"
	}
	if missing {
		return role + MissingRoleSuffix
	}
	return role
}

// RoleBadge renders a role reference, flagging ones that match no role.
func RoleBadge(theme *styles.Theme, role string, missing bool) string {
	text := RoleText(role, missing)
	if missing || role == "" {
		return theme.BadgeMissing.Render(text)
	}
	return theme.TableRow.Render(text)
}

// PermissionText is the plain form of a permission list.
func PermissionText(perms []rbac.Permission) string {
	if len(perms) == 0 {
		return "none"
	}
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// PermissionChips renders each permission as a chip.
func PermissionChips(theme *styles.Theme, perms []rbac.Permission) string {
	if len(perms) == 0 {
		return theme.BadgeInactive.Render("none")
	}
	var b strings.Builder
	for _, p := range perms {
		b.WriteString(theme.PermissionChip.Render(p.String()))
	}
	return b.String()
}
