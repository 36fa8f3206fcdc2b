package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPanel key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Filter    key.Binding
	Focus     key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Edit      key.Binding
	Device    key.Binding
	Save      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "category")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "category")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/apply")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Focus:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "canvas/palette")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Duplicate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Device:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "desktop/mobile")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.Enter, k.Edit, k.MoveUp, k.MoveDown, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Filter},
		{k.Focus, k.Edit, k.MoveUp, k.MoveDown, k.Duplicate, k.Delete},
		{k.NextPanel, k.Device, k.Save, k.Dismiss, k.Quit},
	}
}
