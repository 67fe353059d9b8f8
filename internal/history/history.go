// Package history implements the undoable mood event log.
package history

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/moodcount/internal/model"
)

var (
	// ErrNoUndo is returned by Undo when no present event is left.
	ErrNoUndo = errors.New("no undo available")
	// ErrNoRedo is returned by Redo when the cursor is at the head.
	ErrNoRedo = errors.New("no redo available")
	// ErrNoImport is returned by RevertImport before any bulk import.
	ErrNoImport = errors.New("no import to revert")
)

type state struct {
	events []model.Category
	cursor int
	counts model.Counts
}

func (s state) clone() state {
	events := make([]model.Category, len(s.events))
	copy(events, s.events)
	return state{events: events, cursor: s.cursor, counts: s.counts}
}

// Log is an ordered, truncatable event log with a cursor separating present
// events [0, cursor) from redo-available events [cursor, len).
//
// A Log is owned by a single caller and is not safe for concurrent use.
type Log struct {
	state

	backup   state
	imported bool
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Record appends c as the newest present event. Any redo-available events
// are discarded first.
func (l *Log) Record(c model.Category) {
	if !c.Valid() {
		panic(fmt.Sprintf("history: record of invalid category %d", int(c)))
	}
	l.events = append(l.events[:l.cursor], c)
	l.cursor++
	l.counts[c.Index()]++
}

// Undo moves the most recent present event into the redo-available range.
func (l *Log) Undo() error {
	if l.cursor == 0 {
		return ErrNoUndo
	}
	l.cursor--
	l.counts[l.at(l.cursor).Index()]--
	return nil
}

// Redo re-applies the first redo-available event.
func (l *Log) Redo() error {
	if l.cursor == len(l.events) {
		return ErrNoRedo
	}
	l.counts[l.at(l.cursor).Index()]++
	l.cursor++
	return nil
}

func (l *Log) at(i int) model.Category {
	if i < 0 || i >= len(l.events) {
		panic(fmt.Sprintf("history: cursor %d out of range for %d events", i, len(l.events)))
	}
	return l.events[i]
}

// Counts returns the tallies of present events.
func (l *Log) Counts() model.Counts {
	return l.counts
}

// Cursor returns the number of present events.
func (l *Log) Cursor() int {
	return l.cursor
}

// Len returns the number of events including redo-available ones.
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns a copy of every event in the log.
func (l *Log) Events() []model.Category {
	out := make([]model.Category, len(l.events))
	copy(out, l.events)
	return out
}

// RecentWindow returns the last min(n, cursor) present events in
// chronological order.
func (l *Log) RecentWindow(n int) []model.Category {
	if n <= 0 {
		return []model.Category{}
	}
	start := l.cursor - n
	if start < 0 {
		start = 0
	}
	out := make([]model.Category, l.cursor-start)
	copy(out, l.events[start:l.cursor])
	return out
}

// BeginBulkImport saves the current state as the revert point and resets
// the log to empty. Only the most recent pre-import state is kept.
func (l *Log) BeginBulkImport() {
	l.backup = l.state.clone()
	l.state = state{}
	l.imported = true
}

// Import replaces the log with cats, keeping the previous state available
// to RevertImport.
func (l *Log) Import(cats []model.Category) {
	l.BeginBulkImport()
	for _, c := range cats {
		l.Record(c)
	}
}

// Imported reports whether a bulk import has happened.
func (l *Log) Imported() bool {
	return l.imported
}

// RevertImport restores the state saved by the last BeginBulkImport. The
// saved state stays available, so reverting again restores it again.
func (l *Log) RevertImport() error {
	if !l.imported {
		return ErrNoImport
	}
	l.state = l.backup.clone()
	return nil
}

// CheckInvariants panics if the cursor or the tallies disagree with the
// event list.
func (l *Log) CheckInvariants() {
	if l.cursor < 0 || l.cursor > len(l.events) {
		panic(fmt.Sprintf("history: cursor %d outside [0, %d]", l.cursor, len(l.events)))
	}
	var want model.Counts
	for _, c := range l.events[:l.cursor] {
		want[c.Index()]++
	}
	if want != l.counts {
		panic(fmt.Sprintf("history: counts %v do not match events %v", l.counts, want))
	}
}
