package controller

import (
	"rgbctl/internal/color"
	"rgbctl/internal/tui/model"
	"rgbctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg resolves clicks against the zones marked by the last render.
// Wheel events scroll whichever overlay is open.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	case model.ModeFrameOverlay:
		m.FrameViewport, cmd = m.FrameViewport.Update(msg)
		return m, cmd
	case model.ModeMain:
	default:
		return m, nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.Zones == nil {
		return m, nil
	}

	if m.Zones.Get(view.TabAddZoneID).InBounds(msg) {
		return addTab(m)
	}
	for i := 0; i < m.Workspace.Len(); i++ {
		if m.Zones.Get(view.TabCloseZoneID(i)).InBounds(msg) {
			return removeTab(m, i)
		}
		if m.Zones.Get(view.TabZoneID(i)).InBounds(msg) {
			ws, err := m.Workspace.Select(i)
			if err != nil {
				return m, nil
			}
			m, cmd = selectTab(m, ws)
			return m, tea.Batch(cmd, m.SetFocus(model.FocusTabs))
		}
	}
	for _, ch := range color.Channels {
		z := m.Zones.Get(view.SliderZoneID(ch))
		if !z.InBounds(msg) {
			continue
		}
		x, _ := z.Pos(msg)
		return m, tea.Batch(m.SetFocus(model.FocusForChannel(ch)), setChannelFromSlider(m, ch, x, z.EndX-z.StartX+1))
	}
	if m.Zones.Get(view.ModeZoneID).InBounds(msg) {
		return m, m.SetFocus(model.FocusMode)
	}
	if m.Zones.Get(view.HexZoneID).InBounds(msg) {
		return m, m.SetFocus(model.FocusHex)
	}
	return m, nil
}

// setChannelFromSlider maps a click at column x of a width-cell slider to a
// channel value.
func setChannelFromSlider(m *model.Model, ch color.Channel, x, width int) tea.Cmd {
	if width <= 1 || x < 0 {
		return nil
	}
	next, err := m.Picker.SetChannel(ch, SliderValue(x, width))
	if err != nil {
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
	}
	m.ApplyPicker(next)
	return nil
}

// SliderValue converts a slider column into a channel value in [0,255].
func SliderValue(x, width int) int {
	if width <= 1 {
		return 0
	}
	if x >= width {
		x = width - 1
	}
	return (x*255 + (width-1)/2) / (width - 1)
}
