package grid

import "github.com/itsblakeyeon/smart-utm-builder/internal/model"

// DefaultMaxHistory bounds the undo stack. Each entry is a full snapshot,
// so the cap also bounds memory.
const DefaultMaxHistory = 50

// History holds the past/present/future snapshot stacks. Record is called
// exactly once per committed mutation (the Controller enforces that);
// selection and navigation changes never reach it.
type History struct {
	max     int
	past    []model.Snapshot
	present model.Snapshot
	future  []model.Snapshot
}

// NewHistory starts a history whose present is the given snapshot. max <= 0
// selects DefaultMaxHistory.
func NewHistory(present model.Snapshot, max int) *History {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &History{max: max, present: present}
}

// Record pushes the current present onto the past (evicting the oldest
// entry beyond the cap), makes snap the new present, and clears the future.
func (h *History) Record(snap model.Snapshot) {
	h.past = append(h.past, h.present)
	if len(h.past) > h.max {
		h.past = h.past[len(h.past)-h.max:]
	}
	h.present = snap
	h.future = nil
}

// Undo steps back one entry. ok is false when the past is empty; the caller
// treats that as a silent no-op.
func (h *History) Undo() (model.Snapshot, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]model.Snapshot{h.present}, h.future...)
	h.present = prev
	return prev, true
}

// Redo steps forward one entry. ok is false when the future is empty.
func (h *History) Redo() (model.Snapshot, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	if len(h.past) > h.max {
		h.past = h.past[len(h.past)-h.max:]
	}
	h.present = next
	return next, true
}

// Present returns the current snapshot.
func (h *History) Present() model.Snapshot { return h.present }

// PastLen reports the undo depth.
func (h *History) PastLen() int { return len(h.past) }

// FutureLen reports the redo depth.
func (h *History) FutureLen() int { return len(h.future) }
