package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/moodcount/internal/model"
)

type keyMap struct {
	Record [model.CategoryCount]key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Write  key.Binding
	Load   key.Binding
	Revert key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	km := keyMap{
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "redo")),
		Write:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "write")),
		Load:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "load")),
		Revert: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "revert load")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for i, c := range model.Categories {
		k := string(c.Digit())
		km.Record[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, c.String()))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.Record[:], k.Undo, k.Redo, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Record[:],
		{k.Undo, k.Redo},
		{k.Write, k.Load, k.Revert},
		{k.Help, k.Quit},
	}
}
