package model

import (
	"testing"
	"time"

	"rgbctl/internal/color"
	"rgbctl/internal/device"
	"rgbctl/internal/picker"
	"rgbctl/internal/workspace"
	"rgbctl/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialModel_Defaults(t *testing.T) {
	m := InitialModel(TUIConfig{}, nil)

	assert.Equal(t, ModeMain, m.CurrentAppMode)
	assert.Equal(t, FocusTabs, m.Focus)
	assert.Equal(t, []string{"Profile 1", "Profile 2"}, m.Workspace.Names())
	assert.Equal(t, "#000000", m.Picker.Hex)
	assert.Equal(t, "#000000", m.HexInput.Value())
	for i := range m.ChannelInputs {
		assert.Equal(t, "0", m.ChannelInputs[i].Value())
	}
	assert.Equal(t, defaultPreviewInterval, m.PreviewInterval)
	assert.NotNil(t, m.Zones)
	assert.NotNil(t, m.Init())
}

func TestInitialModel_UsesWorkspace(t *testing.T) {
	p := device.NewProfile()
	p.Color = color.RGB{0x1a, 0x2b, 0x3c}
	ws := workspace.New(device.NewProfile(), workspace.Entry{Name: "Desk", Profile: p})

	m := InitialModel(TUIConfig{Workspace: ws, PreviewInterval: time.Second}, nil)

	assert.Equal(t, []string{"Desk"}, m.Workspace.Names())
	assert.Equal(t, "#1a2b3c", m.HexInput.Value())
	assert.Equal(t, "43", m.ChannelInputs[color.Green].Value())
	assert.Equal(t, time.Second, m.PreviewInterval)
	assert.Equal(t, p.Color, m.Preview.Display())
}

func TestFocusNext(t *testing.T) {
	assert.Equal(t, FocusHex, FocusTabs.Next(1))
	assert.Equal(t, FocusMode, FocusTabs.Next(-1))
	assert.Equal(t, FocusTabs, FocusMode.Next(1))

	ch, ok := FocusGreen.Channel()
	require.True(t, ok)
	assert.Equal(t, color.Green, ch)
	assert.Equal(t, FocusGreen, FocusForChannel(color.Green))

	_, ok = FocusMode.Channel()
	assert.False(t, ok)
}

func TestApplyPicker_UpdatesActiveProfile(t *testing.T) {
	m := InitialModel(TUIConfig{}, nil)
	s, err := picker.New(color.Black).OnHexInput("#FF8000")
	require.NoError(t, err)

	m.ApplyPicker(s)

	_, p := m.ActiveProfile()
	assert.Equal(t, color.RGB{255, 128, 0}, p.Color)
	assert.Equal(t, "#ff8000", m.HexInput.Value())
	assert.Equal(t, "128", m.ChannelInputs[color.Green].Value())

	other, err := m.Workspace.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, color.Black, other.Color)
}

func TestSetFocus(t *testing.T) {
	m := InitialModel(TUIConfig{}, nil)

	m.SetFocus(FocusHex)
	assert.True(t, m.HexInput.Focused())

	m.HexInput.SetValue("#abc")
	m.SetFocus(FocusBlue)
	assert.False(t, m.HexInput.Focused())
	assert.True(t, m.ChannelInputs[color.Blue].Focused())
	assert.Equal(t, "#000000", m.HexInput.Value(), "uncommitted text is dropped")
}

func TestStatusMessage(t *testing.T) {
	m := InitialModel(TUIConfig{}, nil)

	cmd := m.SetStatusMessage("first", StatusBarInfo, time.Millisecond)
	require.NotNil(t, cmd)
	m.SetStatusMessage("second", StatusBarError, time.Millisecond)

	m.ClearStatusMessage(1)
	assert.Equal(t, "second", m.StatusBarMessage, "stale clear is ignored")

	m.ClearStatusMessage(2)
	assert.Empty(t, m.StatusBarMessage)
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entry, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Entry.Message)

	close(ch)
	assert.IsType(t, LogChannelClosedMsg{}, ListenForLogEntriesCmd(ch)())
}

func TestColorChangeCmd(t *testing.T) {
	msg := ColorChangeCmd(color.Blue, "12")()
	assert.Equal(t, ColorChangeMsg{Channel: color.Blue, Value: "12"}, msg)
}
