package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Left       key.Binding
	Right      key.Binding
	BigLeft    key.Binding
	BigRight   key.Binding
	Enter      key.Binding
	Esc        key.Binding
	AddTab     key.Binding
	RemoveTab  key.Binding
	RenameTab  key.Binding
	WaitUp     key.Binding
	WaitDown   key.Binding
	CopyHex    key.Binding
	ShowFrame  key.Binding
	ToggleLog  key.Binding
	ToggleDark key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tab / -1"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab / +1"),
		),
		BigLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "-16"),
		),
		BigRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "+16"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply value"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		AddTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new profile"),
		),
		RemoveTab: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove profile"),
		),
		RenameTab: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename profile"),
		),
		WaitUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "slower"),
		),
		WaitDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "faster"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex / frame"),
		),
		ShowFrame: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "device frame"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// Each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Left, k.Right, k.BigLeft, k.BigRight, k.Enter}, // Navigation & editing
		{k.AddTab, k.RemoveTab, k.RenameTab, k.WaitUp, k.WaitDown},           // Profiles
		{k.CopyHex, k.ShowFrame, k.ToggleLog, k.ToggleDark, k.Help, k.Quit},  // UI/General
	}
}

// ShortHelp returns a minimal set of bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}
