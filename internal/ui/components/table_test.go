// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/accessdash/internal/ui/styles"
)

func newTestTable() *Table {
	return NewTable(styles.NewTheme(),
		Column{Title: "Name", Width: 10},
		Column{Title: "Email", Width: 12},
	)
}

func TestTableEmpty(t *testing.T) {
	table := newTestTable()
	table.Empty = "No users yet"

	view := table.View()
	if !strings.Contains(view, "Name") || !strings.Contains(view, "Email") {
		t.Errorf("header missing: %q", view)
	}
	if !strings.Contains(view, "No users yet") {
		t.Errorf("empty text missing: %q", view)
	}
}

func TestTableRowsAndCursor(t *testing.T) {
	table := newTestTable()
	table.SetRows([][]Cell{
		{Plain("John Doe"), Plain("john@example.com")},
		{Plain("Jane Smith"), Plain("jane@example.com")},
	})

	view := table.View()
	if !strings.Contains(view, "> John Doe") {
		t.Errorf("first row should be selected: %q", view)
	}
	if !strings.Contains(view, "john@exampl…") {
		t.Errorf("long email should be truncated to the column: %q", view)
	}

	table.MoveCursor(5)
	if table.Cursor != 1 {
		t.Errorf("MoveCursor past the end: Cursor = %d, want 1", table.Cursor)
	}
	table.MoveCursor(-5)
	if table.Cursor != 0 {
		t.Errorf("MoveCursor past the start: Cursor = %d, want 0", table.Cursor)
	}

	table.Cursor = 1
	table.SetRows(table.Rows[:1])
	if table.Cursor != 0 {
		t.Errorf("SetRows should clamp the cursor, got %d", table.Cursor)
	}
}

func TestTableStyledCellFallsBackWhenTooWide(t *testing.T) {
	if got := renderCell(Cell{Text: "plain", Styled: "styled"}, 8, false); got != "styled  " {
		t.Errorf("renderCell styled = %q", got)
	}
	if got := renderCell(Cell{Text: "plain", Styled: "much too wide"}, 8, false); got != "plain   " {
		t.Errorf("renderCell fallback = %q", got)
	}
	if got := renderCell(Cell{Text: "plain", Styled: "styled"}, 8, true); got != "plain   " {
		t.Errorf("renderCell plain = %q", got)
	}
}

func TestTableRowWidthIsStable(t *testing.T) {
	table := newTestTable()
	table.SetRows([][]Cell{
		{Plain("日本語の名前"), Plain("a@b.c")},
		{Plain("Ann"), Plain("ann@example.org")},
	})

	lines := strings.Split(table.renderLine(table.Rows[0], true), "\n")
	other := strings.Split(table.renderLine(table.Rows[1], true), "\n")
	if lipgloss.Width(lines[0]) != lipgloss.Width(other[0]) {
		t.Errorf("rows differ in width: %d vs %d", lipgloss.Width(lines[0]), lipgloss.Width(other[0]))
	}
}
