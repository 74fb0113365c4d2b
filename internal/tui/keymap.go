package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Recorder
	Up         key.Binding
	Down       key.Binding
	ToggleType key.Binding
	Submit     key.Binding

	// Welcome and picker
	Choose key.Binding
	Cancel key.Binding

	// Application
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous category"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next category"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "income/expense"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save"),
		),

		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "choose folder"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleType, k.Submit, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleType, k.Submit},
		{k.Help, k.ClearScreen, k.Quit, k.ForceQuit},
	}
}

// welcomeKeys is the help shown before a folder is configured.
type welcomeKeys struct {
	KeyMap
}

func (k welcomeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Quit}
}

func (k welcomeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Choose, k.Quit, k.ForceQuit}}
}

// pickerKeys is the help shown while browsing for a folder.
type pickerKeys struct {
	KeyMap
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "use folder")),
		key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open")),
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "up")),
		k.Cancel,
	}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
