package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/itsblakeyeon/smart-utm-builder/internal/grid"
	"github.com/itsblakeyeon/smart-utm-builder/internal/utm"
)

// rowAppendedMsg completes the deferred-focus handshake: it is emitted as a
// command after the Update that appended the row, so by the time it arrives
// the view has rendered the new geometry.
type rowAppendedMsg struct{ seq int }

type minibufferClearMsg struct{ seq int }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rowAppendedMsg:
		// Only the rendezvous for the latest append acts.
		if msg.seq != m.appendSeq {
			return m, nil
		}
		if target, ok := m.ctl.ConfirmGeometry(); ok {
			m.relay.drain()
			m.ensureVisible(target.Row)
			m.log.Debug("focus rendezvous", zap.Int("row", target.Row))
			// The fresh row's first field opens for typing immediately.
			return m.beginEdit(), nil
		}
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibuffer = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q", "ctrl+q":
				m.showHelp = false
			}
			return m, nil
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "up", "down", "left", "right":
		m.ctl.Move(keyDirection(msg.String()), false, grid.Caret{}, "")
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "shift+up", "shift+down", "shift+left", "shift+right":
		dir := keyDirection(strings.TrimPrefix(msg.String(), "shift+"))
		m.ctl.Move(dir, true, grid.Caret{}, "")
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "tab":
		m.ctl.Tab(false, "")
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "shift+tab":
		m.ctl.Tab(true, "")
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "enter":
		return m.beginEdit(), nil

	case " ":
		m.ctl.ToggleRowChecked(m.ctl.Selection().Active().Row)
		return m, nil

	case "ctrl+a":
		m.ctl.ToggleAllChecked()
		return m, nil

	case "d":
		return m.deleteRows()

	case "ctrl+z":
		if m.ctl.Undo() {
			m.applyFocus()
			return m.flash("undone")
		}
		return m.flash("nothing to undo")

	case "ctrl+y":
		if m.ctl.Redo() {
			m.applyFocus()
			return m.flash("redone")
		}
		return m.flash("nothing to redo")

	case "ctrl+c":
		if _, err := m.ctl.Copy(); err != nil {
			return m.flash("copy failed: " + err.Error())
		}
		rect := m.ctl.Selection().NormalizedRect()
		return m.flash(fmt.Sprintf("copied %dx%d", rect.Height(), rect.Width()))

	case "ctrl+v":
		before := m.ctl.Store().Len()
		if err := m.ctl.Paste(); err != nil {
			return m.flash("paste failed: " + err.Error())
		}
		m.ensureVisible(m.ctl.Selection().Active().Row)
		if grown := m.ctl.Store().Len() - before; grown > 0 {
			return m.flash(fmt.Sprintf("pasted (+%d rows)", grown))
		}
		return m.flash("pasted")

	case "ctrl+u":
		return m.copyURLs()
	}
	return m, nil
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctl.CancelEdit()
		m.editing = false
		m.editor.Blur()
		return m, nil

	case "enter":
		res := m.ctl.Enter(m.editor.Value())
		m.editing = false
		m.editor.Blur()
		m.ensureVisible(m.ctl.Selection().Active().Row)
		if res == grid.EnterAppended {
			m.appendSeq++
			seq := m.appendSeq
			// Defer focus until after this frame renders the new row.
			return m, func() tea.Msg { return rowAppendedMsg{seq: seq} }
		}
		return m, nil

	// Most terminals send a plain CR for shift+enter, so alt+enter is the
	// binding that actually arrives; shift+enter is kept for the terminals
	// that do distinguish it (kitty keyboard protocol).
	case "shift+enter", "alt+enter":
		m.ctl.ShiftEnter(m.editor.Value())
		m.editing = false
		m.editor.Blur()
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "tab", "shift+tab":
		m.ctl.Tab(msg.String() == "shift+tab", m.editor.Value())
		m.editing = false
		m.editor.Blur()
		m.ensureVisible(m.ctl.Selection().Active().Row)
		return m, nil

	case "up", "down", "left", "right":
		caret := grid.Caret{
			AtStart: m.editor.Position() == 0,
			AtEnd:   m.editor.Position() >= len([]rune(m.editor.Value())),
		}
		if m.ctl.Move(keyDirection(msg.String()), false, caret, m.editor.Value()) == grid.MoveApplied {
			m.editing = false
			m.editor.Blur()
			m.ensureVisible(m.ctl.Selection().Active().Row)
			return m, nil
		}
		// The caret was not at the boundary: the key moves the caret.
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m appModel) beginEdit() appModel {
	val, ok := m.ctl.BeginEdit()
	if !ok {
		return m
	}
	m.editor.SetValue(val)
	// textinput has no text selection; honoring SelectAll as caret-to-end
	// keeps typing-over natural via ctrl+u and is the closest available.
	m.editor.CursorEnd()
	m.editor.Focus()
	m.editing = true
	m.relay.selectAll = false
	return m
}

func (m appModel) deleteRows() (tea.Model, tea.Cmd) {
	ids := m.ctl.CheckedIDs()
	if len(ids) == 0 {
		if id := m.ctl.Store().RowID(m.ctl.Selection().Active().Row); id != "" {
			ids = []string{id}
		}
	}
	if len(ids) == 0 {
		return m, nil
	}
	m.ctl.DeleteRows(ids)
	m.ensureVisible(m.ctl.Selection().Active().Row)
	return m.flash(fmt.Sprintf("deleted %d row(s)", len(ids)))
}

func (m appModel) copyURLs() (tea.Model, tea.Cmd) {
	rows := m.ctl.Store().Rows()
	checked := map[string]bool{}
	for _, id := range m.ctl.CheckedIDs() {
		checked[id] = true
	}

	var urls []string
	if len(checked) > 0 {
		for _, r := range rows {
			if !checked[r.ID] {
				continue
			}
			if u := utm.BuildURL(r); u != "" {
				urls = append(urls, u)
			}
		}
	} else {
		at := m.ctl.Selection().Active()
		if row, ok := m.ctl.Store().Row(at.Row); ok {
			if u := utm.BuildURL(row); u != "" {
				urls = append(urls, u)
			}
		}
	}
	if len(urls) == 0 {
		return m.flash("no complete URL to copy")
	}
	if err := m.ctl.WriteClipboard(strings.Join(urls, "\n")); err != nil {
		return m.flash("copy failed: " + err.Error())
	}
	return m.flash(fmt.Sprintf("copied %d URL(s)", len(urls)))
}

// applyFocus drains the engine's focus relay and scrolls to the target.
func (m *appModel) applyFocus() {
	if target, ok := m.relay.drain(); ok {
		m.ensureVisible(target.Row)
	}
}

// ensureVisible adjusts the scroll window so the row is on screen.
func (m *appModel) ensureVisible(row int) {
	visible := m.visibleRows()
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+visible {
		m.scrollRow = row - visible + 1
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

func (m appModel) flash(text string) (tea.Model, tea.Cmd) {
	m.minibuffer = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return minibufferClearMsg{seq: seq}
	})
}

func keyDirection(key string) grid.Direction {
	switch key {
	case "up":
		return grid.DirUp
	case "down":
		return grid.DirDown
	case "left":
		return grid.DirLeft
	}
	return grid.DirRight
}
