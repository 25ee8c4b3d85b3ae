// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"strconv"
	"strings"

	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/components"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes the components for the current terminal width.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(m.width)
	m.helpOverlay.SetSize(m.width, m.height)
	m.help.Width = m.width

	switch m.theme.GetLayoutMode() {
	case styles.LayoutNarrow:
		m.userTable.Columns = []components.Column{
			{Title: "Name", Width: 16},
			{Title: "Role", Width: 12},
			{Title: "Status", Width: 10},
		}
		m.roleTable.Columns = []components.Column{
			{Title: "Role Name", Width: 14},
			{Title: "Users", Width: 8},
			{Title: "Permissions", Width: 24},
		}
	case styles.LayoutMedium:
		m.userTable.Columns = []components.Column{
			{Title: "Name", Width: 18},
			{Title: "Email", Width: 24},
			{Title: "Role", Width: 14},
			{Title: "Status", Width: 10},
		}
		m.roleTable.Columns = []components.Column{
			{Title: "Role Name", Width: 16},
			{Title: "Users", Width: 8},
			{Title: "Permissions", Width: 50},
		}
	default:
		m.userTable.Columns = []components.Column{
			{Title: "Name", Width: 22},
			{Title: "Email", Width: 30},
			{Title: "Role", Width: 18},
			{Title: "Status", Width: 12},
			{Title: "Actions", Width: 16},
		}
		m.roleTable.Columns = []components.Column{
			{Title: "Role Name", Width: 18},
			{Title: "Users", Width: 8},
			{Title: "Permissions", Width: 66},
			{Title: "Actions", Width: 16},
		}
	}
	m.sync()
}

// sync rebuilds the table rows from the store. Cells are keyed by column
// title so one row builder serves every layout.
func (m *Model) sync() {
	st := m.store.State()
	m.tabs.SetActive(int(st.Tab))

	missing := map[rbac.ID]bool{}
	for _, u := range rbac.UnassignedUsers(st.Users, st.Roles) {
		missing[u.ID] = true
	}

	userRows := make([][]components.Cell, len(st.Users))
	for i, u := range st.Users {
		cells := map[string]components.Cell{
			"Name":  components.Plain(u.Name),
			"Email": components.Plain(u.Email),
			"Role": {
				Text:   components.RoleText(u.Role, missing[u.ID]),
				Styled: components.RoleBadge(m.theme, u.Role, missing[u.ID]),
			},
			"Status": {
				Text:   components.StatusText(u.Status),
				Styled: components.StatusBadge(m.theme, u.Status),
			},
			"Actions": {
				Text:   "e edit  d delete",
				Styled: m.theme.ActionHint.Render("e edit  d delete"),
			},
		}
		userRows[i] = rowFor(m.userTable.Columns, cells)
	}
	m.userTable.SetRows(userRows)

	roleRows := make([][]components.Cell, len(st.Roles))
	for i, r := range st.Roles {
		perms := r.Permissions.Slice()
		cells := map[string]components.Cell{
			"Role Name": components.Plain(r.Name),
			"Users":     components.Plain(strconv.Itoa(rbac.CountMembers(r, st.Users))),
			"Permissions": {
				Text:   components.PermissionText(perms),
				Styled: components.PermissionChips(m.theme, perms),
			},
			"Actions": {
				Text:   "e edit  d delete",
				Styled: m.theme.ActionHint.Render("e edit  d delete"),
			},
		}
		roleRows[i] = rowFor(m.roleTable.Columns, cells)
	}
	m.roleTable.SetRows(roleRows)
}

func rowFor(columns []components.Column, cells map[string]components.Cell) []components.Cell {
	row := make([]components.Cell, len(columns))
	for i, c := range columns {
		row[i] = cells[c.Title]
	}
	return row
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the dashboard, or the open dialog in its place.
func (m Model) View() string {
	if m.helpOverlay.IsVisible() {
		return m.helpOverlay.View()
	}

	st := m.store.State()
	switch {
	case isConfirming(st):
		return m.deleteConfirm.View(m.width, m.height)
	case store.IsOpen(st.UserDialog):
		return m.userEditor.View(m.width, m.height)
	case store.IsOpen(st.RoleDialog):
		return m.roleEditor.View(m.width, m.height)
	}

	return m.theme.App.Render(m.renderMain(st))
}

func isConfirming(st store.State) bool {
	_, ok := st.PendingDelete()
	return ok
}

func (m Model) renderMain(st store.State) string {
	var b strings.Builder

	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.tabs.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Spacer())

	if st.Tab == store.TabRoles {
		b.WriteString(m.renderSection("Roles", "Manage roles and permissions",
			components.Pluralize(len(st.Roles), "role", "roles")))
		b.WriteString("\n")
		b.WriteString(m.theme.Spacer())
		b.WriteString(m.roleTable.View())
	} else {
		b.WriteString(m.renderSection("Users", "Manage user access and roles",
			components.Pluralize(len(st.Users), "user", "users")))
		b.WriteString("\n")
		b.WriteString(m.renderSearch())
		b.WriteString("\n")
		b.WriteString(m.theme.Spacer())
		b.WriteString(m.userTable.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderSection(title, description, count string) string {
	return m.theme.HeaderTitle.Render(title) + "  " +
		m.theme.HeaderSubtitle.Render(description) + "  " +
		m.theme.ActionHint.Render("("+count+")")
}

func (m Model) renderSearch() string {
	if m.search.Focused() {
		return m.theme.SearchBoxFocused.Render(m.search.View())
	}
	return m.theme.SearchBox.Render(m.search.View())
}

func (m Model) renderFooter() string {
	var lines []string
	if t := m.toast.View(); t != "" {
		lines = append(lines, t)
	}
	if m.showHelp {
		lines = append(lines, m.help.View(m.keys))
	}
	if len(lines) == 0 {
		return ""
	}
	return m.theme.StatusBar.Render(strings.Join(lines, "\n"))
}
