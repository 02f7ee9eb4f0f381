package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the form's keyboard shortcuts.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Suggest key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab/↑", "previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", " "),
			key.WithHelp("←/→/Space", "toggle option"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("Ctrl+G", "suggest category"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add transaction"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Suggest, k.Submit, k.Cancel}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle},
		{k.Suggest, k.Submit, k.Cancel},
	}
}
