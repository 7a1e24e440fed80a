// Package grid implements the grid interaction and history engine: the row
// store, bounded undo/redo history, selection state, the keyboard/clipboard
// intent machine, and the tab/newline clipboard codec. It has no terminal
// dependencies; the presentation layer and the persistence/clipboard/focus
// collaborators plug in through interfaces on the Controller.
package grid

import (
	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// RecordStore owns the ordered, mutable row collection. It is confined to
// the single input-handling goroutine and is not safe for concurrent use.
//
// Every committed mutation fires the OnChange hook (used by the debounced
// persistence saver). History recording is the Controller's job, not the
// store's: undo/redo applies snapshots through ReplaceAll, which must not
// re-record.
type RecordStore struct {
	rows     []model.Row
	onChange func()
}

// NewRecordStore builds a store seeded with rows (deep-copied).
func NewRecordStore(rows []model.Row) *RecordStore {
	return &RecordStore{rows: model.CloneRows(rows)}
}

// SetOnChange registers the change hook. Passing nil clears it.
func (s *RecordStore) SetOnChange(fn func()) { s.onChange = fn }

func (s *RecordStore) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the current row count.
func (s *RecordStore) Len() int { return len(s.rows) }

// Row returns a deep copy of the row at index i.
func (s *RecordStore) Row(i int) (model.Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return model.Row{}, false
	}
	return s.rows[i].Clone(), true
}

// RowID returns the id of the row at index i, or "" when i is stale.
func (s *RecordStore) RowID(i int) string {
	if i < 0 || i >= len(s.rows) {
		return ""
	}
	return s.rows[i].ID
}

// IndexOf returns the current index of the row with the given id.
func (s *RecordStore) IndexOf(id string) (int, bool) {
	for i, r := range s.rows {
		if r.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Value returns the cell value at c, empty for stale coordinates.
func (s *RecordStore) Value(c model.CellCoord) string {
	if c.Row < 0 || c.Row >= len(s.rows) {
		return ""
	}
	return s.rows[c.Row].Get(c.Field)
}

// Append inserts row at the end and returns its id.
func (s *RecordStore) Append(row model.Row) string {
	s.rows = append(s.rows, row.Clone())
	s.changed()
	return row.ID
}

// Remove deletes the rows whose ids appear in ids, preserving the relative
// order of the survivors. Unknown ids are ignored.
func (s *RecordStore) Remove(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.rows[:0]
	removed := false
	for _, r := range s.rows {
		if drop[r.ID] {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	if removed {
		s.changed()
	}
}

// Update sets one field on the row with the given id. A missing id is a
// silent no-op (deletions may race with stale in-flight edits) and returns
// false without firing the change hook.
func (s *RecordStore) Update(id string, field model.Field, value string) bool {
	if model.SchemaIndex(field) < 0 {
		return false
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Fields[field] = value
			s.changed()
			return true
		}
	}
	return false
}

// SetChecked flips the bulk-action mark on a row. Marks persist with the
// rows (the change hook fires) but never produce history entries.
func (s *RecordStore) SetChecked(id string, checked bool) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Checked = checked
			s.changed()
			return
		}
	}
}

// ReplaceAll atomically swaps the whole collection (undo/redo/import).
func (s *RecordStore) ReplaceAll(rows []model.Row) {
	s.rows = model.CloneRows(rows)
	s.changed()
}

// Snapshot returns an independent deep copy of the row sequence. The result
// shares no mutable sub-objects with the live store.
func (s *RecordStore) Snapshot() model.Snapshot {
	return model.Snapshot(model.CloneRows(s.rows))
}

// Rows returns a deep copy of all rows (export, URL listing).
func (s *RecordStore) Rows() []model.Row {
	return model.CloneRows(s.rows)
}
