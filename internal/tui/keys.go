package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the deck shell. Everything not
// listed here flows into the prompt as text.
type KeyMap struct {
	Submit     key.Binding
	RecallPrev key.Binding // Step back through command history.
	RecallNext key.Binding // Step forward, past the newest entry to an empty prompt.

	ClearScreen key.Binding // Shortcut for the clear command.
	CopyOutput  key.Binding // Copy the last entry's output to the clipboard.

	ScrollUp   key.Binding // Transcript scrollback.
	ScrollDown key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	RecallPrev: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "recall"),
	),
	RecallNext: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "recall"),
	),
	ClearScreen: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "clear"),
	),
	CopyOutput: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy output"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "quit"),
	),
}
