// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/accessdash/internal/ui/styles"
	"github.com/jeranaias/accessdash/internal/util"
)

// =============================================================================
// TABLE COMPONENT
// =============================================================================

// Column describes one table column. Width is in terminal columns.
type Column struct {
	Title string
	Width int
}

// Cell is one table cell. Text is the plain content used for sizing and
// for the selected row; Styled, when set and narrow enough, is shown instead.
type Cell struct {
	Text   string
	Styled string
}

// Plain returns a cell with no styling.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// Table renders rows of cells with a header and a selected row.
type Table struct {
	Columns []Column
	Rows    [][]Cell
	Cursor  int
	// Empty is shown instead of rows when there are none.
	Empty string
	theme *styles.Theme
}

// NewTable creates a table with the given columns.
func NewTable(theme *styles.Theme, columns ...Column) *Table {
	return &Table{Columns: columns, theme: theme}
}

// SetRows replaces the rows and keeps the cursor in range.
func (t *Table) SetRows(rows [][]Cell) {
	t.Rows = rows
	t.Cursor = clamp(t.Cursor, 0, max(len(rows)-1, 0))
}

// MoveCursor moves the selection by delta rows, stopping at the ends.
func (t *Table) MoveCursor(delta int) {
	if len(t.Rows) == 0 {
		t.Cursor = 0
		return
	}
	t.Cursor = clamp(t.Cursor+delta, 0, len(t.Rows)-1)
}

// View renders the table.
func (t *Table) View() string {
	var b strings.Builder

	titles := make([]Cell, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = Plain(c.Title)
	}
	b.WriteString(t.theme.TableHeader.Render("  " + t.renderLine(titles, true)))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		b.WriteString(t.theme.TableEmpty.Render(t.Empty))
		return b.String()
	}

	for i, row := range t.Rows {
		selected := i == t.Cursor
		line := t.renderLine(row, selected)
		if selected {
			b.WriteString(t.theme.TableRowSelected.Render("> " + line))
		} else {
			b.WriteString(t.theme.TableRow.Render("  " + line))
		}
		if i < len(t.Rows)-1 {
			b.WriteString("\n")
			if !t.theme.Compact {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// renderLine lays cells out to the column widths. Plain text is used when
// plain is set so a row highlight is not broken by inner styles.
func (t *Table) renderLine(cells []Cell, plain bool) string {
	parts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		var cell Cell
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = renderCell(cell, col.Width, plain)
	}
	return strings.Join(parts, " ")
}

func renderCell(c Cell, width int, plain bool) string {
	if !plain && c.Styled != "" {
		if w := lipgloss.Width(c.Styled); w <= width {
			return c.Styled + strings.Repeat(" ", width-w)
		}
	}
	return util.FitWidth(c.Text, width)
}
