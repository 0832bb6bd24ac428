package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Add       key.Binding
	Blur      key.Binding
	Directed  key.Binding
	Matrix    key.Binding
	Save      key.Binding
	Reshuffle key.Binding
	Quit      key.Binding
}

// The letter keys of Directed, Matrix, Save, Reshuffle and Quit only fire
// when no text input has focus; ctrl+s, ctrl+t and ctrl+c work everywhere.
var keys = keyMap{
	Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add edge")),
	Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "canvas")),
	Directed:  key.NewBinding(key.WithKeys("d", " ", "space"), key.WithHelp("d", "directed")),
	Matrix:    key.NewBinding(key.WithKeys("m", "ctrl+t"), key.WithHelp("m", "matrix")),
	Save:      key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
	Reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new layout")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Blur, k.Directed, k.Matrix, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Add, k.Blur},
		{k.Directed, k.Matrix, k.Save, k.Reshuffle, k.Quit},
	}
}
