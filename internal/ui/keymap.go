package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings shown in the help footer
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	Project   key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Cut       key.Binding
	Copy      key.Binding
	Paste     key.Binding
	NewFolder key.Binding
	Rename    key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("backspace", "h"), key.WithHelp("bksp", "up a level")),
		Project:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next project")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Cut:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "paste")),
		NewFolder: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new folder")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the footer bindings
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cut, k.Copy, k.Paste, k.NewFolder, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped in columns
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back, k.Project},
		{k.Select, k.SelectAll, k.Cut, k.Copy, k.Paste},
		{k.NewFolder, k.Rename, k.Delete, k.Help, k.Quit},
	}
}
