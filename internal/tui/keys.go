package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the weight tuner.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Increase key.Binding
	Decrease key.Binding
	Toggle   key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous criterion"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next criterion"),
		),
		Increase: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/+", "raise weight"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "lower weight"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i", "flip benefit/cost"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
