// Package ui holds the key bindings and widgets shared by the viewer.
package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the viewer. The bindings carry
// their help text so the help overlay stays in sync with the actual keys.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	SOL      key.Binding
	EOL      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Command key.Binding
	Query   key.Binding
	Follow  key.Binding
	Yank    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the vim-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		SOL: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "start of line"),
		),
		EOL: key.NewBinding(
			key.WithKeys("$", "end"),
			key.WithHelp("$", "end of line"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "goto row[:col]"),
		),
		Query: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "query path"),
		),
		Follow: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "follow ref under cursor"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank line"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Query, k.Yank, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SOL, k.EOL, k.PageUp, k.PageDown},
		{k.Command, k.Query, k.Follow, k.Yank},
		{k.Help, k.Quit},
	}
}
