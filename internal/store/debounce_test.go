package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// countingKV counts Set calls so tests can assert how many writes a burst
// of notifications produced.
type countingKV struct {
	mu   sync.Mutex
	sets int
	last string
}

func (c *countingKV) Get(string) (string, bool, error) { return "", false, nil }

func (c *countingKV) Set(_, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.last = value
	return nil
}

func (c *countingKV) Remove(string) error { return nil }

func (c *countingKV) stats() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets, c.last
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func persistedSource(t *testing.T, payload string) string {
	t.Helper()
	out, ok := model.UnmarshalRows([]byte(payload))
	if !ok || len(out) != 1 {
		t.Fatalf("persisted payload unreadable: %q", payload)
	}
	return out[0].Get(model.FieldSource)
}

func TestDebouncedSaverCollapsesBurstIntoOneWrite(t *testing.T) {
	t.Parallel()

	kv := &countingKV{}
	saver := NewDebouncedSaver(kv, 40*time.Millisecond, nil)
	rows := []model.Row{model.NewRowWith(map[model.Field]string{model.FieldSource: "v0"})}

	// Five edits inside the quiet window, each handing over a snapshot the
	// way the store's change hook does.
	for i := 1; i <= 5; i++ {
		rows[0].Fields[model.FieldSource] = fmt.Sprintf("v%d", i)
		saver.Notify(model.CloneRows(rows))
		time.Sleep(3 * time.Millisecond)
	}

	waitFor(t, 2*time.Second, func() bool { sets, _ := kv.stats(); return sets >= 1 })

	sets, last := kv.stats()
	if sets != 1 {
		t.Fatalf("writes = %d, want exactly 1", sets)
	}
	if got := persistedSource(t, last); got != "v5" {
		t.Fatalf("persisted value = %q, want the value after the fifth edit", got)
	}
}

func TestDebouncedSaverWritesNotifyTimeSnapshot(t *testing.T) {
	t.Parallel()

	kv := &countingKV{}
	saver := NewDebouncedSaver(kv, 25*time.Millisecond, nil)
	rows := []model.Row{model.NewRowWith(map[model.Field]string{model.FieldSource: "committed"})}

	saver.Notify(model.CloneRows(rows))
	// Mutating the live rows after Notify must not reach the write: the
	// saver owns the snapshot handed to it, not the caller's slice.
	rows[0].Fields[model.FieldSource] = "mutated-after-notify"

	waitFor(t, 2*time.Second, func() bool { sets, _ := kv.stats(); return sets == 1 })
	_, last := kv.stats()
	if got := persistedSource(t, last); got != "committed" {
		t.Fatalf("persisted value = %q, want the notify-time snapshot", got)
	}
}

func TestDebouncedSaverRearmsAfterQuietWindow(t *testing.T) {
	t.Parallel()

	kv := &countingKV{}
	saver := NewDebouncedSaver(kv, 25*time.Millisecond, nil)

	saver.Notify(nil)
	waitFor(t, 2*time.Second, func() bool { sets, _ := kv.stats(); return sets == 1 })

	saver.Notify(nil)
	waitFor(t, 2*time.Second, func() bool { sets, _ := kv.stats(); return sets == 2 })
}

func TestDebouncedSaverFlushWritesPending(t *testing.T) {
	t.Parallel()

	kv := &countingKV{}
	saver := NewDebouncedSaver(kv, time.Hour, nil)

	saver.Notify(nil)
	saver.Flush()

	sets, _ := kv.stats()
	if sets != 1 {
		t.Fatalf("writes after Flush = %d, want 1", sets)
	}

	// Nothing pending: Flush is a no-op.
	saver.Flush()
	sets, _ = kv.stats()
	if sets != 1 {
		t.Fatalf("idle Flush wrote: %d", sets)
	}
}
