package model

import (
	"time"

	"rgbctl/internal/device"
	"rgbctl/internal/workspace"
	"rgbctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const defaultPreviewInterval = 50 * time.Millisecond

// InitialModel builds the model for a workspace. A zero workspace gets the
// default two profiles.
func InitialModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	ws := cfg.Workspace
	if ws.Len() == 0 {
		ws = workspace.New(device.NewProfile())
	}
	interval := cfg.PreviewInterval
	if interval <= 0 {
		interval = defaultPreviewInterval
	}

	hex := textinput.New()
	hex.Prompt = ""
	hex.Placeholder = "#rrggbb"
	hex.CharLimit = 7
	hex.Width = 8

	var channels [3]textinput.Model
	for i := range channels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4
		ti.Width = 4
		channels[i] = ti
	}

	rename := textinput.New()
	rename.Prompt = "Name: "
	rename.CharLimit = 32
	rename.Width = 32

	m := &Model{
		CurrentAppMode:  ModeMain,
		Focus:           FocusTabs,
		DebugMode:       cfg.DebugMode,
		DarkMode:        cfg.DarkMode,
		Workspace:       ws,
		PreviewInterval: interval,
		HexInput:        hex,
		ChannelInputs:   channels,
		RenameInput:     rename,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		LogViewport:     viewport.New(0, 0),
		FrameViewport:   viewport.New(0, 0),
		Zones:           zone.New(),
		LogChannel:      logChannel,
	}
	_, active := ws.Active()
	m.Preview = device.NewPreview(active)
	m.SyncFromWorkspace()
	return m
}

// Init starts the preview animation and the log listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		PreviewTickCmd(m.PreviewInterval),
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
