// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dump.go - The dump command: prints the seeded users and roles.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeranaias/accessdash/internal/config"
	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/util"
)

// DumpUser is one user in the dump output.
type DumpUser struct {
	ID      rbac.ID     `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Status  rbac.Status `json:"status"`
	Missing bool        `json:"role_missing,omitempty"`
}

// DumpRole is one role in the dump output.
type DumpRole struct {
	ID          rbac.ID  `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Members     int      `json:"members"`
}

// DumpData is the JSON payload of the dump command.
type DumpData struct {
	Users []DumpUser `json:"users"`
	Roles []DumpRole `json:"roles"`
}

// BuildDumpData converts seeded records into dump rows.
func BuildDumpData(users []rbac.User, roles []rbac.Role) DumpData {
	missing := map[rbac.ID]bool{}
	for _, u := range rbac.UnassignedUsers(users, roles) {
		missing[u.ID] = true
	}

	data := DumpData{
		Users: make([]DumpUser, 0, len(users)),
		Roles: make([]DumpRole, 0, len(roles)),
	}
	for _, u := range users {
		data.Users = append(data.Users, DumpUser{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Role:    u.Role,
			Status:  u.Status,
			Missing: missing[u.ID],
		})
	}
	for _, r := range roles {
		data.Roles = append(data.Roles, DumpRole{
			ID:          r.ID,
			Name:        r.Name,
			Permissions: r.Permissions.Strings(),
			Members:     rbac.CountMembers(r, users),
		})
	}
	return data
}

// HandleDump handles the "dump" command.
func HandleDump(w io.Writer, cfg *config.Config, args Args) error {
	switch args.Format {
	case "", "table", "json":
	default:
		return NewUsageError("unknown dump format: "+args.Format, "use --format table or --format json")
	}

	users, roles, err := cfg.Seed.Build()
	if err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}
	data := BuildDumpData(users, roles)

	if args.JSON {
		return NewJSONResponse("dump", data).Print(w)
	}

	writeDump(w, data, GetTerminalWidth())
	return nil
}

// =============================================================================
// TEXT OUTPUT
// =============================================================================

type dumpColumn struct {
	title string
	width int
}

func writeDump(w io.Writer, data DumpData, width int) {
	userCols := []dumpColumn{
		{"ID", 4}, {"Name", 20}, {"Email", 26}, {"Role", 18}, {"Status", 8},
	}
	fmt.Fprintln(w, render(TitleStyle, fmt.Sprintf("Users (%d)", len(data.Users))))
	writeHeader(w, userCols)
	if len(data.Users) == 0 {
		fmt.Fprintln(w, render(DimStyle, "  no users"))
	}
	for _, u := range data.Users {
		role := u.Role
		if role == "" {
			role = "-"
		}
		roleStyle := ValueStyle
		if u.Missing {
			role += " (missing)"
			roleStyle = WarningStyle
		}
		statusStyle := SuccessStyle
		if u.Status != rbac.StatusActive {
			statusStyle = DimStyle
		}

		fmt.Fprintln(w, "  "+strings.Join([]string{
			util.FitWidth(strconv.Itoa(int(u.ID)), userCols[0].width),
			util.FitWidth(u.Name, userCols[1].width),
			util.FitWidth(u.Email, userCols[2].width),
			render(roleStyle, util.FitWidth(role, userCols[3].width)),
			render(statusStyle, u.Status.Label()),
		}, " "))
	}
	fmt.Fprintln(w)

	// Permissions take whatever width the terminal has left.
	permWidth := width - 2 - (4 + 1) - (16 + 1) - (6 + 1)
	if permWidth < 20 {
		permWidth = 20
	}
	roleCols := []dumpColumn{
		{"ID", 4}, {"Role Name", 16}, {"Users", 6}, {"Permissions", permWidth},
	}
	fmt.Fprintln(w, render(TitleStyle, fmt.Sprintf("Roles (%d)", len(data.Roles))))
	writeHeader(w, roleCols)
	if len(data.Roles) == 0 {
		fmt.Fprintln(w, render(DimStyle, "  no roles"))
	}
	for _, r := range data.Roles {
		perms := strings.Join(r.Permissions, ", ")
		if perms == "" {
			perms = "none"
		}
		fmt.Fprintln(w, "  "+strings.Join([]string{
			util.FitWidth(strconv.Itoa(int(r.ID)), roleCols[0].width),
			util.FitWidth(r.Name, roleCols[1].width),
			util.FitWidth(strconv.Itoa(r.Members), roleCols[2].width),
			util.TruncateWidth(perms, roleCols[3].width),
		}, " "))
	}
}

func writeHeader(w io.Writer, cols []dumpColumn) {
	parts := make([]string, len(cols))
	total := 0
	for i, c := range cols {
		parts[i] = util.FitWidth(c.title, c.width)
		total += c.width + 1
	}
	fmt.Fprintln(w, "  "+render(SectionStyle, strings.TrimRight(strings.Join(parts, " "), " ")))
	fmt.Fprintln(w, "  "+RenderSeparator(total-1))
}
