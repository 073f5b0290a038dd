package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for form navigation.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings. None of them is a printable
// character, so every letter can be typed into a field.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// HelpText returns help text for input forms.
func (k KeyMap) HelpText() string {
	return "tab next field • enter continue • esc cancel"
}
