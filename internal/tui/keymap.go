package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextRegion     key.Binding
	PrevRegion     key.Binding
	SortName       key.Binding
	SortType       key.Binding
	SortStatus     key.Binding
	SortPopulation key.Binding
	Reload         key.Binding
	ReloadAll      key.Binding
	CopyRow        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "row down"),
		),
		NextRegion: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next region"),
		),
		PrevRegion: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous region"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort by realm name"),
		),
		SortType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by realm type"),
		),
		SortStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by status"),
		),
		SortPopulation: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort by population"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload region"),
		),
		ReloadAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload all regions"),
		),
		CopyRow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy focused row"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextRegion, k.SortName, k.SortStatus, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextRegion, k.PrevRegion},
		{k.SortName, k.SortType, k.SortStatus, k.SortPopulation},
		{k.Reload, k.ReloadAll, k.CopyRow},
		{k.Help, k.Quit},
	}
}
