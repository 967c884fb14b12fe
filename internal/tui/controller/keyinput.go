package controller

import (
	"rgbctl/internal/color"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const bigNudge = 16

// handleKeyMsgInputMode handles keys while the hex field or a channel field
// has focus. Printable keys go to the field, so letter shortcuts are not
// active here.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, m.SetFocus(m.Focus.Next(1))
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, m.SetFocus(m.Focus.Next(-1))
	case key.Matches(keyMsg, m.Keys.Esc):
		return m, m.SetFocus(model.FocusTabs)
	}

	if m.Focus == model.FocusHex {
		if key.Matches(keyMsg, m.Keys.Enter) {
			return m, model.HexSubmittedCmd(m.HexInput.Value())
		}
		var cmd tea.Cmd
		m.HexInput, cmd = m.HexInput.Update(keyMsg)
		return m, cmd
	}

	ch, _ := m.Focus.Channel()
	switch keyMsg.Type {
	case tea.KeyEnter:
		return m, model.ColorChangeCmd(ch, m.ChannelInputs[ch].Value())
	case tea.KeyLeft, tea.KeyDown:
		return nudge(m, ch, -1), nil
	case tea.KeyRight, tea.KeyUp:
		return nudge(m, ch, 1), nil
	case tea.KeyShiftLeft:
		return nudge(m, ch, -bigNudge), nil
	case tea.KeyShiftRight:
		return nudge(m, ch, bigNudge), nil
	}

	var cmd tea.Cmd
	m.ChannelInputs[ch], cmd = m.ChannelInputs[ch].Update(keyMsg)
	return m, cmd
}

func nudge(m *model.Model, ch color.Channel, delta int) *model.Model {
	m.ApplyPicker(m.Picker.Nudge(ch, delta))
	return m
}
