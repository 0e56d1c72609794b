package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the pager key bindings.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default pager bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Jump:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("0-9 enter", "go to page")),
		Clear:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "clear")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.First, k.Last, k.Jump, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Clear}}
}
