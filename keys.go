package main

import "github.com/charmbracelet/bubbles/key"

// keyMap documents the bindings in the controls box. Routing itself goes
// through browser.AppState.HandleKey.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Leave   key.Binding
	Select  key.Binding
	Abort   key.Binding
	NewFile key.Binding
	NewDir  key.Binding
	Delete  key.Binding
	Rename  key.Binding
	Open    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Enter:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open dir")),
		Leave:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "parent")),
		Select:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "cd here")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NewFile: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new file")),
		NewDir:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new dir")),
		Delete:  key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "delete")),
		Rename:  key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "rename")),
		Open:    key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o", "open")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Leave, k.Select}
}

// FullHelp groups navigation and file operations, one column each.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Leave},
		{k.Select, k.Abort, k.Open},
		{k.NewFile, k.NewDir, k.Delete, k.Rename},
	}
}
