package grid

import (
	"testing"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

func storeWithSources(values ...string) *RecordStore {
	rows := make([]model.Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, model.NewRowWith(map[model.Field]string{model.FieldSource: v}))
	}
	return NewRecordStore(rows)
}

func TestStoreUpdateMissingIDIsNoOp(t *testing.T) {
	t.Parallel()

	s := storeWithSources("a")
	fired := 0
	s.SetOnChange(func() { fired++ })

	if s.Update("no-such-id", model.FieldSource, "x") {
		t.Fatal("Update() succeeded for missing id")
	}
	if fired != 0 {
		t.Fatalf("change hook fired %d times for a no-op update", fired)
	}
	if got := s.Value(model.CellCoord{Row: 0, Field: model.FieldSource}); got != "a" {
		t.Fatalf("value = %q, want %q", got, "a")
	}
}

func TestStoreSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	s := storeWithSources("a")
	snap := s.Snapshot()

	s.Update(s.RowID(0), model.FieldSource, "mutated")

	if got := snap[0].Get(model.FieldSource); got != "a" {
		t.Fatalf("snapshot mutated through live store: %q", got)
	}

	// And the other direction: writing into the snapshot copy must not
	// leak into the store.
	snap[0].Fields[model.FieldSource] = "poked"
	if got := s.Value(model.CellCoord{Row: 0, Field: model.FieldSource}); got != "mutated" {
		t.Fatalf("store mutated through snapshot: %q", got)
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	t.Parallel()

	s := storeWithSources("a", "b", "c", "d")
	s.Remove([]string{s.RowID(1), s.RowID(3)})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	got := []string{
		s.Value(model.CellCoord{Row: 0, Field: model.FieldSource}),
		s.Value(model.CellCoord{Row: 1, Field: model.FieldSource}),
	}
	if got[0] != "a" || got[1] != "c" {
		t.Fatalf("surviving rows = %v, want [a c]", got)
	}
}

func TestStoreRemoveUnknownIDsIgnored(t *testing.T) {
	t.Parallel()

	s := storeWithSources("a")
	fired := 0
	s.SetOnChange(func() { fired++ })

	s.Remove([]string{"ghost"})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if fired != 0 {
		t.Fatalf("change hook fired %d times removing a ghost id", fired)
	}
}

func TestStoreAppendReturnsID(t *testing.T) {
	t.Parallel()

	s := NewRecordStore(nil)
	row := model.NewRow()
	id := s.Append(row)
	if id != row.ID {
		t.Fatalf("Append() id = %q, want %q", id, row.ID)
	}
	if idx, ok := s.IndexOf(id); !ok || idx != 0 {
		t.Fatalf("IndexOf(%q) = %d, %v", id, idx, ok)
	}
}

func TestStoreReplaceAllFiresChange(t *testing.T) {
	t.Parallel()

	s := storeWithSources("a")
	fired := 0
	s.SetOnChange(func() { fired++ })

	s.ReplaceAll([]model.Row{model.NewRow(), model.NewRow()})
	if fired != 1 {
		t.Fatalf("change hook fired %d times, want 1", fired)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}
