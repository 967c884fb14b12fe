package model

import (
	"strconv"
	"time"

	"rgbctl/internal/device"
	"rgbctl/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// ActiveProfile returns the name and profile of the tab being edited.
func (m *Model) ActiveProfile() (string, device.Profile) {
	return m.Workspace.Active()
}

// SyncFromWorkspace reloads the picker, the preview and the input fields from
// the active tab. Used after the active tab changes.
func (m *Model) SyncFromWorkspace() {
	_, p := m.Workspace.Active()
	m.Picker = picker.New(p.Color)
	m.Preview.SetProfile(p)
	m.refreshInputs()
}

// ApplyPicker stores a new picker state in the active profile and refreshes
// everything derived from it.
func (m *Model) ApplyPicker(s picker.State) {
	_, p := m.Workspace.Active()
	p.Color = s.Color
	m.Picker = s
	m.Workspace = m.Workspace.UpdateActive(p)
	m.Preview.SetProfile(p)
	m.refreshInputs()
}

// ApplyProfile replaces the active profile, e.g. after a mode or wait change.
func (m *Model) ApplyProfile(p device.Profile) {
	m.Workspace = m.Workspace.UpdateActive(p)
	m.Picker = picker.New(p.Color)
	m.Preview.SetProfile(p)
	m.refreshInputs()
}

// ResetChannelInput discards uncommitted text in a channel field.
func (m *Model) ResetChannelInput(i int) {
	m.ChannelInputs[i].SetValue(strconv.Itoa(int(m.Picker.Color[i])))
	m.ChannelInputs[i].CursorEnd()
}

// ResetHexInput discards uncommitted text in the hex field.
func (m *Model) ResetHexInput() {
	m.HexInput.SetValue(m.Picker.Hex)
	m.HexInput.CursorEnd()
}

func (m *Model) refreshInputs() {
	m.ResetHexInput()
	for i := range m.ChannelInputs {
		m.ResetChannelInput(i)
	}
}

// SetFocus moves keyboard focus and focuses the matching text input.
func (m *Model) SetFocus(f Focus) tea.Cmd {
	m.Focus = f
	m.HexInput.Blur()
	for i := range m.ChannelInputs {
		m.ChannelInputs[i].Blur()
	}
	// Leaving a field drops what was typed but not committed.
	m.refreshInputs()

	switch f {
	case FocusHex:
		return m.HexInput.Focus()
	default:
		if ch, ok := f.Channel(); ok {
			return m.ChannelInputs[ch].Focus()
		}
	}
	return nil
}

// SetStatusMessage shows msg in the status bar and returns the command that
// clears it after d unless another message replaced it first.
func (m *Model) SetStatusMessage(msg string, msgType MessageType, d time.Duration) tea.Cmd {
	m.statusSeq++
	id := m.statusSeq
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{ID: id}
	})
}

// ClearStatusMessage handles a ClearStatusBarMsg.
func (m *Model) ClearStatusMessage(id int) {
	if id == m.statusSeq {
		m.StatusBarMessage = ""
	}
}
