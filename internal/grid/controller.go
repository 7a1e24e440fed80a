package grid

import (
	"go.uber.org/zap"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// Direction of a navigation step.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Caret describes where the text caret sits inside the cell editor. The
// engine never talks to the editor widget directly; the presentation layer
// reports boundary state so arrow keys can decide between committing the
// edit and moving the caret.
type Caret struct {
	AtStart bool
	AtEnd   bool
}

// MoveResult tells the presentation layer what to do with an arrow key.
type MoveResult int

const (
	// MoveApplied: the engine handled the key (selection moved and/or the
	// edit was committed).
	MoveApplied MoveResult = iota
	// MovePassthrough: the key belongs to the text editor (caret movement,
	// shift-selection inside the edit buffer, or an open IME session).
	MovePassthrough
)

// Clipboard is the asynchronous system clipboard collaborator. Failures are
// reported to the caller and never corrupt grid state.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// Focuser receives focus commands. Focus is a no-op when the target no
// longer exists; SelectAll pre-selects the focused editor's content.
type Focuser interface {
	Focus(rowIndex int, field model.Field)
	SelectAll()
}

type editState struct {
	rowID    string
	coord    model.CellCoord
	original string
}

// Controller interprets keyboard and clipboard intents against the store,
// history, and selection, keeping them mutually consistent. All methods run
// synchronously on the single input-handling goroutine.
type Controller struct {
	store   *RecordStore
	history *History
	sel     *Selection
	clip    Clipboard
	focus   Focuser
	log     *zap.Logger

	editing   *editState
	composing bool

	// pendingFocus is the deferred focus target set by the Enter append
	// path; it is only acted on once the presentation layer confirms the
	// new geometry is observable (ConfirmGeometry).
	pendingFocus *model.CellCoord
}

// NewController wires the engine together. clip and focus may be nil
// (copy/paste become unavailable and focus commands are dropped), log may
// be nil for a nop logger.
func NewController(store *RecordStore, history *History, clip Clipboard, focus Focuser, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:   store,
		history: history,
		sel:     NewSelection(model.CellCoord{Row: 0, Field: model.Schema[0]}),
		clip:    clip,
		focus:   focus,
		log:     log,
	}
}

// Store exposes the record store (read paths in the presentation layer).
func (c *Controller) Store() *RecordStore { return c.store }

// Selection exposes the selection model.
func (c *Controller) Selection() *Selection { return c.sel }

// History exposes the history manager.
func (c *Controller) History() *History { return c.history }

// commit records exactly one history entry for the mutation that just
// completed. Every discrete committed intent funnels through here once.
func (c *Controller) commit() {
	c.history.Record(c.store.Snapshot())
}

// SetComposing toggles IME composition state. While true, navigation and
// commit keys are not interpreted.
func (c *Controller) SetComposing(v bool) { c.composing = v }

// Composing reports whether an IME session is open.
func (c *Controller) Composing() bool { return c.composing }

// Editing returns the coordinate currently in text-edit mode.
func (c *Controller) Editing() (model.CellCoord, bool) {
	if c.editing == nil {
		return model.CellCoord{}, false
	}
	return c.editing.coord, true
}

// BeginEdit puts the active cell into text-edit mode and returns the value
// to seed the editor with. The focused editor's content is pre-selected.
func (c *Controller) BeginEdit() (string, bool) {
	if c.composing {
		return "", false
	}
	at := c.sel.Active()
	id := c.store.RowID(at.Row)
	if id == "" {
		return "", false
	}
	val := c.store.Value(at)
	c.editing = &editState{rowID: id, coord: at, original: val}
	if c.focus != nil {
		c.focus.SelectAll()
	}
	return val, true
}

// CommitEdit writes the edited value through the store and records one
// history entry when the value actually changed. Committing against a row
// that has since been deleted is a silent no-op.
func (c *Controller) CommitEdit(value string) {
	ed := c.editing
	if ed == nil {
		return
	}
	c.editing = nil
	if value == ed.original {
		return
	}
	if !c.store.Update(ed.rowID, ed.coord.Field, value) {
		// Stale edit against a removed row; nothing to record.
		c.log.Debug("commit against removed row", zap.String("rowId", ed.rowID))
		return
	}
	c.commit()
}

// CancelEdit leaves edit mode without touching the store, so the field
// keeps its pre-edit value. No history entry is created.
func (c *Controller) CancelEdit() {
	c.editing = nil
}

// clampStep moves coord one step in dir without wrapping, clamped to the
// grid edges.
func (c *Controller) clampStep(coord model.CellCoord, dir Direction) model.CellCoord {
	switch dir {
	case DirUp:
		if coord.Row > 0 {
			coord.Row--
		}
	case DirDown:
		if coord.Row < c.store.Len()-1 {
			coord.Row++
		}
	case DirLeft:
		if i := coord.Col(); i > 0 {
			coord.Field = model.Schema[i-1]
		}
	case DirRight:
		if i := coord.Col(); i >= 0 && i < len(model.Schema)-1 {
			coord.Field = model.Schema[i+1]
		}
	}
	return coord
}

// Move handles an arrow key. Outside edit mode it moves the active cell
// (or extends the range when shift is held). In edit mode a horizontal
// arrow commits and navigates only when the caret sits at the matching
// boundary; vertical arrows always commit and navigate. editorValue is the
// editor's current text, consulted only when a commit is required.
func (c *Controller) Move(dir Direction, shift bool, caret Caret, editorValue string) MoveResult {
	if c.composing {
		return MovePassthrough
	}
	if c.editing != nil {
		if shift {
			// Shift+arrow inside the editor selects text; EditingState untouched.
			return MovePassthrough
		}
		switch dir {
		case DirLeft:
			if !caret.AtStart {
				return MovePassthrough
			}
		case DirRight:
			if !caret.AtEnd {
				return MovePassthrough
			}
		}
		c.CommitEdit(editorValue)
	}
	at := c.sel.Active()
	next := c.clampStep(at, dir)
	if shift {
		c.sel.ExtendRange(next)
	} else {
		c.sel.SetActiveCell(next)
	}
	return MoveApplied
}

// EnterResult reports what the Enter key did.
type EnterResult int

const (
	// EnterMoved: focus moved within the existing rows.
	EnterMoved EnterResult = iota
	// EnterAppended: a row was appended; the focus command is deferred
	// until ConfirmGeometry is called.
	EnterAppended
	// EnterIgnored: composition open or no rows.
	EnterIgnored
)

// Enter commits any open edit, then moves down one row, except at the
// last field of the last row, where it appends a fresh row and defers the
// focus move until the presentation layer confirms the new geometry.
func (c *Controller) Enter(editorValue string) EnterResult {
	if c.composing {
		return EnterIgnored
	}
	if c.editing != nil {
		c.CommitEdit(editorValue)
	}
	at := c.sel.Active()
	lastRow := c.store.Len() - 1
	if lastRow < 0 {
		return EnterIgnored
	}
	if at.Row == lastRow && at.Col() == len(model.Schema)-1 {
		c.store.Append(model.NewRow())
		c.commit()
		target := model.CellCoord{Row: c.store.Len() - 1, Field: model.Schema[0]}
		c.sel.SetActiveCell(target)
		c.pendingFocus = &target
		c.log.Debug("row appended", zap.Int("rows", c.store.Len()))
		return EnterAppended
	}
	c.sel.SetActiveCell(c.clampStep(at, DirDown))
	return EnterMoved
}

// ShiftEnter commits any open edit and moves up one row, same field. It
// never creates a row.
func (c *Controller) ShiftEnter(editorValue string) {
	if c.composing {
		return
	}
	if c.editing != nil {
		c.CommitEdit(editorValue)
	}
	c.sel.SetActiveCell(c.clampStep(c.sel.Active(), DirUp))
}

// Tab commits any open edit and moves to the next (or previous, when back
// is set) field, wrapping across row boundaries. Tab at the last field of
// the last row does not create a row.
func (c *Controller) Tab(back bool, editorValue string) {
	if c.composing {
		return
	}
	if c.editing != nil {
		c.CommitEdit(editorValue)
	}
	at := c.sel.Active()
	col := at.Col()
	if back {
		col--
		if col < 0 {
			if at.Row == 0 {
				return
			}
			at.Row--
			col = len(model.Schema) - 1
		}
	} else {
		col++
		if col >= len(model.Schema) {
			if at.Row >= c.store.Len()-1 {
				return
			}
			at.Row++
			col = 0
		}
	}
	at.Field = model.Schema[col]
	c.sel.SetActiveCell(at)
}

// ConfirmGeometry completes the deferred-focus handshake: once the
// presentation layer has observed the post-append geometry, the focus
// command is issued. Returns the focused coordinate when one was pending.
func (c *Controller) ConfirmGeometry() (model.CellCoord, bool) {
	if c.pendingFocus == nil {
		return model.CellCoord{}, false
	}
	target := *c.pendingFocus
	c.pendingFocus = nil
	if target.Row >= c.store.Len() {
		// The row vanished before the rendezvous completed.
		return model.CellCoord{}, false
	}
	if c.focus != nil {
		c.focus.Focus(target.Row, target.Field)
	}
	return target, true
}

// PendingFocus reports whether a deferred focus command is outstanding.
func (c *Controller) PendingFocus() bool { return c.pendingFocus != nil }

// Undo applies the previous snapshot, if any, and issues a focus command
// for the (clamped) active cell so the caret lands at the end of its field
// text. Empty history is a silent no-op.
func (c *Controller) Undo() bool {
	if c.composing {
		return false
	}
	snap, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.editing = nil
	c.store.ReplaceAll(snap)
	c.sel.ClampToRowCount(c.store.Len())
	if c.focus != nil {
		at := c.sel.Active()
		c.focus.Focus(at.Row, at.Field)
	}
	return true
}

// Redo is symmetric to Undo over the future stack.
func (c *Controller) Redo() bool {
	if c.composing {
		return false
	}
	snap, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.editing = nil
	c.store.ReplaceAll(snap)
	c.sel.ClampToRowCount(c.store.Len())
	if c.focus != nil {
		at := c.sel.Active()
		c.focus.Focus(at.Row, at.Field)
	}
	return true
}

// copyRect is the selection rectangle, collapsed selections covering just
// the active cell.
func (c *Controller) copyRect() Rect {
	return c.sel.NormalizedRect()
}

// Copy encodes the selected rectangle and writes it to the clipboard. A
// clipboard failure is returned to the caller; no state changes either way.
func (c *Controller) Copy() (string, error) {
	if c.clip == nil {
		return "", ErrClipboardUnavailable
	}
	text := Encode(c.store.Rows(), c.copyRect())
	if err := c.clip.WriteText(text); err != nil {
		return "", err
	}
	return text, nil
}

// WriteClipboard writes arbitrary text (built URLs, exports) through the
// clipboard collaborator with the same failure semantics as Copy.
func (c *Controller) WriteClipboard(text string) error {
	if c.clip == nil {
		return ErrClipboardUnavailable
	}
	return c.clip.WriteText(text)
}

// Paste reads the clipboard and writes the decoded block into the grid
// starting at the active cell, growing the row count when the block
// overflows the remaining rows. The whole paste is one mutation and one
// history entry; a clipboard failure performs zero mutation.
func (c *Controller) Paste() error {
	if c.composing {
		return nil
	}
	if c.clip == nil {
		return ErrClipboardUnavailable
	}
	text, err := c.clip.ReadText()
	if err != nil {
		return err
	}
	matrix := Decode(text)
	if len(matrix) == 0 {
		return nil
	}
	at := c.sel.Active()
	startCol := at.Col()
	if at.Row < 0 || at.Row >= c.store.Len() || startCol < 0 {
		return nil
	}

	rows := c.store.Rows()
	// Grow by the shortfall so the block fits below the anchor row.
	for len(rows) < at.Row+len(matrix) {
		rows = append(rows, model.NewRow())
	}
	for i, line := range matrix {
		row := &rows[at.Row+i]
		for j, val := range line {
			f, ok := model.FieldAt(startCol + j)
			if !ok {
				break
			}
			row.Fields[f] = val
		}
	}
	c.store.ReplaceAll(rows)
	c.commit()
	c.log.Debug("paste applied",
		zap.Int("rows", len(matrix)),
		zap.Int("startRow", at.Row),
		zap.Int("startCol", startCol))
	return nil
}

// ToggleRowChecked flips the bulk-action mark on the row at index i. Marks
// never affect the cell range and never create history entries.
func (c *Controller) ToggleRowChecked(i int) {
	row, ok := c.store.Row(i)
	if !ok {
		return
	}
	c.store.SetChecked(row.ID, !row.Checked)
}

// ToggleAllChecked checks every row, or clears all marks when every row is
// already checked.
func (c *Controller) ToggleAllChecked() {
	rows := c.store.Rows()
	all := len(rows) > 0
	for _, r := range rows {
		if !r.Checked {
			all = false
			break
		}
	}
	for _, r := range rows {
		c.store.SetChecked(r.ID, !all)
	}
}

// CheckedIDs returns the ids of checked rows in grid order.
func (c *Controller) CheckedIDs() []string {
	var ids []string
	for _, r := range c.store.Rows() {
		if r.Checked {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// DeleteRows removes the given rows in one commit, reseeding a blank row
// when the grid would become empty, and clamps the selection. Stale state
// referencing the removed rows is reset.
func (c *Controller) DeleteRows(ids []string) {
	if c.composing || len(ids) == 0 {
		return
	}
	if c.editing != nil {
		for _, id := range ids {
			if id == c.editing.rowID {
				c.editing = nil
				break
			}
		}
	}
	before := c.store.Len()
	c.store.Remove(ids)
	if c.store.Len() == before {
		return
	}
	if c.store.Len() == 0 {
		c.store.Append(model.NewRow())
	}
	c.commit()
	c.sel.ClampToRowCount(c.store.Len())
}
