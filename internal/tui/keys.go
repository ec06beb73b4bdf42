package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Fold   key.Binding
	Call   key.Binding
	Raise  key.Binding
	Outs   key.Binding
	Next   key.Binding
	Quit   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Fold:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fold")),
		Call:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "call/check")),
		Raise:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "raise")),
		Outs:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "count outs")),
		Next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next spot")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fold, k.Call, k.Raise, k.Outs, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fold, k.Call, k.Raise},
		{k.Outs, k.Next, k.Quit},
		{k.Submit, k.Cancel},
	}
}

// promptKeys is shown while the text input is active
type promptKeys struct{ keyMap }

func (k promptKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
