// internal/tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the command surface: six step commands, undo, equation toggle,
// submit, restart, popup confirmation, help and quit.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Undo     key.Binding
	Toggle   key.Binding
	Submit   key.Binding
	Restart  key.Binding
	Confirm  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Wider:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wider")),
		Narrower: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "narrower")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Toggle:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle equation")),
		Submit:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "submit")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new target")),
		Confirm:  key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "ok")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Wider, k.Narrower, k.Undo},
		{k.Toggle, k.Submit, k.Restart},
		{k.Help, k.Quit},
	}
}
