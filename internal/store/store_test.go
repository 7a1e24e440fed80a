package store

import (
	"testing"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	if _, ok, _ := kv.Get("missing"); ok {
		t.Fatal("Get() found a missing key")
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("key survived Remove()")
	}
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	t.Parallel()

	kv, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v", ok, err)
	}
	if err := kv.Set("rows", "{}"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := kv.Set("rows", `{"version":1}`); err != nil {
		t.Fatalf("Set() overwrite error: %v", err)
	}
	v, ok, err := kv.Get("rows")
	if err != nil || !ok || v != `{"version":1}` {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if err := kv.Remove("rows"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if _, ok, _ := kv.Get("rows"); ok {
		t.Fatal("key survived Remove()")
	}
}

func TestLoadRowsAbsentAndMalformed(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()

	rows, err := LoadRows(kv)
	if err != nil || rows != nil {
		t.Fatalf("LoadRows(absent) = %v, %v", rows, err)
	}

	// Malformed payloads are treated as absent, never fatal.
	_ = kv.Set(RowsKey, "{not json")
	rows, err = LoadRows(kv)
	if err != nil || rows != nil {
		t.Fatalf("LoadRows(malformed) = %v, %v", rows, err)
	}
}

func TestSaveLoadRowsRoundTrip(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	in := []model.Row{
		model.NewRowWith(map[model.Field]string{
			model.FieldBaseURL: "https://example.com",
			model.FieldSource:  "newsletter",
		}),
	}
	in[0].Checked = true

	if err := SaveRows(kv, in); err != nil {
		t.Fatalf("SaveRows() error: %v", err)
	}
	out, err := LoadRows(kv)
	if err != nil {
		t.Fatalf("LoadRows() error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	if out[0].ID != in[0].ID {
		t.Fatalf("id changed across the round trip: %q vs %q", out[0].ID, in[0].ID)
	}
	if got := out[0].Get(model.FieldSource); got != "newsletter" {
		t.Fatalf("source = %q", got)
	}
	if !out[0].Checked {
		t.Fatal("checked mark lost across the round trip")
	}
}
