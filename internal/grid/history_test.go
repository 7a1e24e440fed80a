package grid

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

func snapWithSource(value string) model.Snapshot {
	r := model.NewRowWith(map[model.Field]string{model.FieldSource: value})
	return model.Snapshot{r}
}

func sourceOf(s model.Snapshot) string {
	if len(s) == 0 {
		return ""
	}
	return s[0].Get(model.FieldSource)
}

func TestHistoryUndoRestoresPriorState(t *testing.T) {
	t.Parallel()

	s0 := snapWithSource("newsletter")
	s1 := snapWithSource("twitter")

	h := NewHistory(s0, 0)
	h.Record(s1)

	got, ok := h.Undo()
	if !ok {
		t.Fatal("Undo() reported empty past after a Record")
	}
	if !reflect.DeepEqual(got, s0) {
		t.Fatalf("Undo() = %q, want %q", sourceOf(got), sourceOf(s0))
	}
}

func TestHistoryRedoAfterUndoRoundTrips(t *testing.T) {
	t.Parallel()

	s0 := snapWithSource("a")
	s1 := snapWithSource("b")

	h := NewHistory(s0, 0)
	h.Record(s1)
	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo() failed")
	}
	got, ok := h.Redo()
	if !ok {
		t.Fatal("Redo() reported empty future after an Undo")
	}
	if !reflect.DeepEqual(got, s1) {
		t.Fatalf("Redo() = %q, want %q", sourceOf(got), sourceOf(s1))
	}
	if h.FutureLen() != 0 {
		t.Fatalf("FutureLen() = %d after redo, want 0", h.FutureLen())
	}
}

func TestHistoryUndoRedoOnEmptyStacksAreNoOps(t *testing.T) {
	t.Parallel()

	h := NewHistory(snapWithSource("x"), 0)
	if _, ok := h.Undo(); ok {
		t.Fatal("Undo() succeeded on empty past")
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("Redo() succeeded on empty future")
	}
}

func TestHistoryPastBounded(t *testing.T) {
	t.Parallel()

	h := NewHistory(snapWithSource("seed"), 5)
	for i := 0; i < 40; i++ {
		h.Record(snapWithSource(fmt.Sprintf("v%d", i)))
	}
	if h.PastLen() != 5 {
		t.Fatalf("PastLen() = %d, want 5", h.PastLen())
	}
	// The oldest retained entry is the one 5 records back, not the seed.
	var last model.Snapshot
	for {
		s, ok := h.Undo()
		if !ok {
			break
		}
		last = s
	}
	if got := sourceOf(last); got != "v34" {
		t.Fatalf("oldest retained snapshot = %q, want %q", got, "v34")
	}
}

func TestHistoryRecordClearsFuture(t *testing.T) {
	t.Parallel()

	h := NewHistory(snapWithSource("a"), 0)
	h.Record(snapWithSource("b"))
	h.Record(snapWithSource("c"))
	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo() failed")
	}
	if h.FutureLen() != 1 {
		t.Fatalf("FutureLen() = %d, want 1", h.FutureLen())
	}

	h.Record(snapWithSource("d"))
	if h.FutureLen() != 0 {
		t.Fatalf("FutureLen() = %d after Record, want 0", h.FutureLen())
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("Redo() succeeded after Record cleared the future")
	}
}

func TestHistoryDefaultCap(t *testing.T) {
	t.Parallel()

	h := NewHistory(snapWithSource("seed"), 0)
	for i := 0; i < DefaultMaxHistory*2; i++ {
		h.Record(snapWithSource(fmt.Sprintf("v%d", i)))
	}
	if h.PastLen() != DefaultMaxHistory {
		t.Fatalf("PastLen() = %d, want %d", h.PastLen(), DefaultMaxHistory)
	}
}
