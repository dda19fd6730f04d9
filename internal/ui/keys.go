package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the viewer.
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p", "previous page"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reload pages"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
