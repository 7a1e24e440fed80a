package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Key reference

## Navigation

| Key | Action |
|---|---|
| arrows | move the active cell (no wrap at the edges) |
| shift+arrows | extend the selection rectangle |
| tab / shift+tab | next / previous field, wrapping across rows |
| enter | edit the active cell |

## Editing

| Key | Action |
|---|---|
| enter | commit; at the last cell of the last row, add a row |
| alt+enter (or shift+enter) | commit and move up |
| tab / shift+tab | commit and move to the next / previous field |
| esc | cancel the edit, keep the old value |
| left / right at the text edge | commit and move |

## Rows and clipboard

| Key | Action |
|---|---|
| space | check / uncheck the row |
| ctrl+a | check or clear all rows |
| d | delete checked rows (or the active row) |
| ctrl+c | copy the selection (tab separated) |
| ctrl+v | paste at the active cell |
| ctrl+u | copy the campaign URL (checked rows, or the active one) |
| ctrl+z / ctrl+y | undo / redo |

Press ? or esc to close this help. q quits.
`

// renderHelp renders the key reference at the given wrap width. Falls back
// to the raw markdown when the renderer cannot be built.
func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	if width > 100 {
		width = 100
	}
	// Fixed style: WithAutoStyle can block on terminal queries in some setups.
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
