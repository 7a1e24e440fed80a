package tui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
	"github.com/itsblakeyeon/smart-utm-builder/internal/utm"
)

const (
	checkColWidth = 4
	minCellWidth  = 8
)

// colWidths sizes the six schema columns inside total, giving the base URL
// column double weight.
func colWidths(total int) []int {
	n := len(model.Schema)
	unit := (total - checkColWidth - n) / (n + 1)
	if unit < minCellWidth {
		unit = minCellWidth
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = unit
	}
	widths[0] = unit * 2
	return widths
}

func pad(s string, w int) string {
	s = runewidth.Truncate(s, w, "…")
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

func (m appModel) visibleRows() int {
	// Header, status, minibuffer, and hint lines surround the grid body.
	v := m.height - 5
	if v < 1 {
		v = 1
	}
	return v
}

func (m appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return renderHelp(m.width - 2)
	}

	widths := colWidths(m.width)
	active := m.ctl.Selection().Active()
	rect := m.ctl.Selection().NormalizedRect()
	isRange := m.ctl.Selection().IsRange()

	var b strings.Builder

	// Header.
	b.WriteString(strings.Repeat(" ", checkColWidth))
	for i, f := range model.Schema {
		b.WriteString(styleHeader.Render(pad(model.FieldLabels[f], widths[i])))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Body.
	rows := m.ctl.Store().Rows()
	visible := m.visibleRows()
	for i := m.scrollRow; i < len(rows) && i < m.scrollRow+visible; i++ {
		row := rows[i]
		mark := "[ ] "
		if row.Checked {
			mark = styleCheck.Render("[x]") + " "
		}
		b.WriteString(mark)

		for c, f := range model.Schema {
			cell := row.Get(f)
			switch {
			case m.editing && i == active.Row && f == active.Field:
				ev := m.editor.View()
				if w := xansi.StringWidth(ev); w > widths[c] {
					// Clamp and terminate ANSI styling to prevent bleed.
					ev = xansi.Cut(ev, 0, widths[c]) + "\x1b[0m"
				} else if w < widths[c] {
					ev += strings.Repeat(" ", widths[c]-w)
				}
				b.WriteString(ev)
			case i == active.Row && f == active.Field:
				b.WriteString(styleActive.Render(pad(cell, widths[c])))
			case isRange && rect.Contains(i, c):
				b.WriteString(styleRange.Render(pad(cell, widths[c])))
			default:
				b.WriteString(pad(cell, widths[c]))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for i := len(rows); i < m.scrollRow+visible; i++ {
		b.WriteString("\n")
	}

	// Status: the built URL for the active row, or what is missing.
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.minibuffer != "" {
		b.WriteString(styleStatus.Render(m.minibuffer))
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(m.hintLine()))

	return b.String()
}

func (m appModel) statusLine() string {
	at := m.ctl.Selection().Active()
	row, ok := m.ctl.Store().Row(at.Row)
	if !ok {
		return ""
	}
	if issues := utm.Validate(row); len(issues) > 0 {
		parts := make([]string, len(issues))
		for i, is := range issues {
			parts[i] = is.String()
		}
		return styleError.Render(xansi.Truncate("! "+strings.Join(parts, "; "), m.width, "…"))
	}
	if u := utm.BuildURL(row); u != "" {
		return styleStatus.Render(xansi.Truncate("→ "+u, m.width, "…"))
	}
	return styleMuted.Render(fmt.Sprintf("row %d/%d", at.Row+1, m.ctl.Store().Len()))
}

func (m appModel) hintLine() string {
	if m.editing {
		return "enter commit  esc cancel  tab next field  alt+enter up"
	}
	return "enter edit  space check  d delete  ctrl+c/v copy/paste  ctrl+z undo  ctrl+u copy URL  ? help  q quit"
}
