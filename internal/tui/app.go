// Package tui is the presentation layer: a bubbletea program that renders
// the grid and translates key events into engine intents. All grid
// semantics live in internal/grid; this package only draws state and wires
// the collaborators.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/itsblakeyeon/smart-utm-builder/internal/grid"
	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
	"github.com/itsblakeyeon/smart-utm-builder/internal/store"
)

// focusRelay receives the engine's focus commands. The engine calls it
// synchronously inside Update, so the model drains it right after each
// intent; no locking needed.
type focusRelay struct {
	target    *model.CellCoord
	selectAll bool
}

func (f *focusRelay) Focus(rowIndex int, field model.Field) {
	c := model.CellCoord{Row: rowIndex, Field: field}
	f.target = &c
}

func (f *focusRelay) SelectAll() { f.selectAll = true }

func (f *focusRelay) drain() (model.CellCoord, bool) {
	if f.target == nil {
		return model.CellCoord{}, false
	}
	t := *f.target
	f.target = nil
	return t, true
}

type appModel struct {
	ctl   *grid.Controller
	relay *focusRelay
	log   *zap.Logger

	width  int
	height int

	scrollRow int

	editing bool
	editor  textinput.Model

	showHelp bool

	minibuffer    string
	minibufferSeq int

	// appendSeq guards the deferred-focus rendezvous after a row append:
	// the focus command only fires for the message carrying the latest seq.
	appendSeq int
}

func newAppModel(ctl *grid.Controller, relay *focusRelay, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 0
	return appModel{
		ctl:    ctl,
		relay:  relay,
		log:    log,
		editor: ed,
	}
}

func (m appModel) Init() tea.Cmd { return nil }

// Options configure Run.
type Options struct {
	KV         store.KV
	MaxHistory int
	Debounce   time.Duration
	Log        *zap.Logger
	Clipboard  grid.Clipboard
}

// Run loads the persisted rows, assembles the engine, and drives the
// program until quit. The last pending write is flushed before returning.
func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	applyColorProfilePreference()

	rows, err := store.LoadRows(opts.KV)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		// A fresh grid always presents one blank row.
		rows = []model.Row{model.NewRow()}
	}

	recordStore := grid.NewRecordStore(rows)
	history := grid.NewHistory(recordStore.Snapshot(), opts.MaxHistory)
	relay := &focusRelay{}
	ctl := grid.NewController(recordStore, history, opts.Clipboard, relay, log)

	saver := store.NewDebouncedSaver(opts.KV, opts.Debounce, log)
	// The hook runs on the update goroutine; Rows() hands the saver a deep
	// copy, so the timer goroutine never sees live grid state.
	recordStore.SetOnChange(func() { saver.Notify(recordStore.Rows()) })

	m := newAppModel(ctl, relay, log)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	saver.Flush()
	return err
}
