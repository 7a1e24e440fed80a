package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// DefaultDebounce is the quiet window before a burst of changes is written.
const DefaultDebounce = 500 * time.Millisecond

// DebouncedSaver coalesces change notifications into a single write per
// quiet window. Every Notify re-arms the timer and replaces the captured
// snapshot, so only the value present at the end of the window reaches the
// KV. The caller hands over an already-copied snapshot on its own
// goroutine; the timer goroutine never touches live grid state.
type DebouncedSaver struct {
	kv       KV
	debounce time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	rows    []model.Row
	pending bool
	running bool
}

// NewDebouncedSaver wires the saver. debounce <= 0 selects DefaultDebounce;
// log may be nil.
func NewDebouncedSaver(kv KV, debounce time.Duration, log *zap.Logger) *DebouncedSaver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DebouncedSaver{kv: kv, debounce: debounce, log: log}
}

// Notify (re)arms the delayed write with rows as the payload. rows must be
// a snapshot the caller will not mutate afterwards (RecordStore.Rows
// returns one). Safe to call from the change hook on every mutation.
func (d *DebouncedSaver) Notify(rows []model.Row) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.rows = rows
	d.pending = true
	if d.timer == nil {
		d.timer = time.AfterFunc(d.debounce, d.onTimer)
		d.mu.Unlock()
		return
	}
	d.timer.Reset(d.debounce)
	d.mu.Unlock()
}

func (d *DebouncedSaver) onTimer() {
	d.mu.Lock()
	if d.running {
		// A write is in flight; run again afterwards to pick up the burst.
		if d.timer != nil {
			d.timer.Reset(d.debounce)
		}
		d.mu.Unlock()
		return
	}
	if !d.pending {
		d.mu.Unlock()
		return
	}
	rows := d.rows
	d.pending = false
	d.running = true
	d.mu.Unlock()

	d.write(rows)

	d.mu.Lock()
	d.running = false
	if d.pending && d.timer != nil {
		d.timer.Reset(d.debounce)
	}
	d.mu.Unlock()
}

func (d *DebouncedSaver) write(rows []model.Row) {
	if err := SaveRows(d.kv, rows); err != nil {
		// Persistence is best-effort; the next quiet window retries.
		d.log.Warn("persist rows", zap.Error(err))
	}
}

// Flush cancels any armed timer and writes immediately when changes are
// pending. Called on shutdown so the last burst is not lost.
func (d *DebouncedSaver) Flush() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	rows := d.rows
	pending := d.pending
	d.pending = false
	d.mu.Unlock()
	if pending {
		d.write(rows)
	}
}
