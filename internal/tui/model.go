// Package tui provides the Bubble Tea mood counter interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/moodcount/internal/counterfile"
	"github.com/verte-zerg/moodcount/internal/history"
	"github.com/verte-zerg/moodcount/internal/model"
	"github.com/verte-zerg/moodcount/internal/store"
)

const (
	statusNoUndo   = "No undo can be done!"
	statusNoRedo   = "Already in present."
	statusNoImport = "Cannot undo import from disk. Backup data is lost."
	statusWritten  = "Data written to disk"
	statusLoaded   = "Load from disk"
	statusReverted = "Reverted load from disk"
)

// Model implements the Bubble Tea counter UI. It owns the history log for
// the lifetime of the program.
type Model struct {
	config model.Config
	log    *history.Log
	store  *store.Store
	keys   keyMap
	help   help.Model
	now    func() time.Time

	width  int
	height int

	status    string
	statusErr bool
}

// NewModel constructs a counter TUI model. st may be nil to disable the
// save journal. When cfg.LoadOnStart is set the counter file is imported
// immediately, so the load can be reverted like any other.
func NewModel(cfg model.Config, log *history.Log, st *store.Store) *Model {
	m := &Model{
		config: cfg,
		log:    log,
		store:  st,
		keys:   defaultKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
	if cfg.LoadOnStart {
		m.load()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for i, binding := range m.keys.Record {
		if key.Matches(msg, binding) {
			m.record(model.Categories[i])
			return m, nil
		}
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	case key.Matches(msg, m.keys.Write):
		m.write()
	case key.Matches(msg, m.keys.Load):
		m.load()
	case key.Matches(msg, m.keys.Revert):
		m.revert()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) record(c model.Category) {
	m.log.Record(c)
	m.setStatus("")
}

func (m *Model) undo() {
	if err := m.log.Undo(); err != nil {
		m.setError(err)
	}
}

func (m *Model) redo() {
	if err := m.log.Redo(); err != nil {
		m.setError(err)
	}
}

func (m *Model) write() {
	if err := counterfile.Save(m.config.CounterPath, m.log); err != nil {
		m.setError(err)
		return
	}
	if err := m.journal(); err != nil {
		m.setError(fmt.Errorf("data written to disk, journal failed: %w", err))
		return
	}
	m.setStatus(statusWritten)
}

func (m *Model) journal() error {
	if m.store == nil {
		return nil
	}
	rec := model.SaveRecord{
		SavedAt: m.now(),
		Path:    m.config.CounterPath,
		Encoded: m.log.Encode(),
		Cursor:  m.log.Cursor(),
		Length:  m.log.Len(),
		Counts:  m.log.Counts(),
	}
	_, err := m.store.InsertSave(context.Background(), rec)
	return err
}

func (m *Model) load() {
	cats, err := counterfile.Load(m.config.CounterPath)
	if err != nil {
		m.setError(err)
		return
	}
	if len(cats) == 0 {
		return
	}
	m.log.Import(cats)
	m.log.CheckInvariants()
	m.setStatus(statusLoaded)
}

func (m *Model) revert() {
	if err := m.log.RevertImport(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(statusReverted)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = statusFor(err)
	m.statusErr = true
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, history.ErrNoUndo):
		return statusNoUndo
	case errors.Is(err, history.ErrNoRedo):
		return statusNoRedo
	case errors.Is(err, history.ErrNoImport):
		return statusNoImport
	default:
		return err.Error()
	}
}
