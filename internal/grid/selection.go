package grid

import "github.com/itsblakeyeon/smart-utm-builder/internal/model"

// Rect is a normalized rectangular selection in row/column space,
// inclusive on both ends.
type Rect struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.MaxCol - r.MinCol + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.MaxRow - r.MinRow + 1 }

// Contains reports whether the cell at (row, col) falls inside the rect.
func (r Rect) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// Selection tracks the active cell (anchor == focus when collapsed) and
// the shift-extended range. Only SetActiveCell moves the anchor. The
// checked-row marks are row state, not selection state.
type Selection struct {
	anchor model.CellCoord
	focus  model.CellCoord
}

// NewSelection starts collapsed on the given coordinate.
func NewSelection(at model.CellCoord) *Selection {
	return &Selection{anchor: at, focus: at}
}

// SetActiveCell collapses any range and moves anchor and focus to coord.
func (s *Selection) SetActiveCell(coord model.CellCoord) {
	s.anchor = coord
	s.focus = coord
}

// ExtendRange moves only the focus, leaving the anchor in place
// (shift-navigation).
func (s *Selection) ExtendRange(coord model.CellCoord) {
	s.focus = coord
}

// Active returns the cell eligible for direct text entry (the focus end).
func (s *Selection) Active() model.CellCoord { return s.focus }

// Anchor returns the fixed end of the range.
func (s *Selection) Anchor() model.CellCoord { return s.anchor }

// IsRange reports whether the selection spans more than one cell.
func (s *Selection) IsRange() bool { return s.anchor != s.focus }

// NormalizedRect derives the selection rectangle from anchor/focus.
func (s *Selection) NormalizedRect() Rect {
	r := Rect{
		MinRow: s.anchor.Row, MaxRow: s.focus.Row,
		MinCol: s.anchor.Col(), MaxCol: s.focus.Col(),
	}
	if r.MinRow > r.MaxRow {
		r.MinRow, r.MaxRow = r.MaxRow, r.MinRow
	}
	if r.MinCol > r.MaxCol {
		r.MinCol, r.MaxCol = r.MaxCol, r.MinCol
	}
	return r
}

// ClampToRowCount pulls both ends back inside [0, n) after deletions. An
// empty grid collapses the selection to the origin.
func (s *Selection) ClampToRowCount(n int) {
	clamp := func(c model.CellCoord) model.CellCoord {
		if n <= 0 {
			c.Row = 0
		} else if c.Row >= n {
			c.Row = n - 1
		}
		if c.Row < 0 {
			c.Row = 0
		}
		if model.SchemaIndex(c.Field) < 0 {
			c.Field = model.Schema[0]
		}
		return c
	}
	s.anchor = clamp(s.anchor)
	s.focus = clamp(s.focus)
}
