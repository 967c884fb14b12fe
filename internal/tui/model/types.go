package model

import (
	"time"

	"rgbctl/internal/color"
	"rgbctl/internal/device"
	"rgbctl/internal/picker"
	"rgbctl/internal/workspace"
	"rgbctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	zone "github.com/lrstanley/bubblezone"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeFrameOverlay
	ModeLogOverlay
	ModeRenameInput
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeFrameOverlay:
		return "FrameOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeRenameInput:
		return "RenameInput"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus is the control receiving keyboard input in the main view.
type Focus int

const (
	FocusTabs Focus = iota
	FocusHex
	FocusRed
	FocusGreen
	FocusBlue
	FocusMode
	focusCount
)

// Next moves focus forward (step 1) or backward (step -1), wrapping.
func (f Focus) Next(step int) Focus {
	n := int(focusCount)
	return Focus(((int(f)+step)%n + n) % n)
}

// Channel returns the colour channel a channel row focus edits.
func (f Focus) Channel() (color.Channel, bool) {
	switch f {
	case FocusRed:
		return color.Red, true
	case FocusGreen:
		return color.Green, true
	case FocusBlue:
		return color.Blue, true
	default:
		return 0, false
	}
}

// FocusForChannel is the inverse of Focus.Channel.
func FocusForChannel(ch color.Channel) Focus {
	return FocusRed + Focus(ch)
}

// String names the focus target for the status bar.
func (f Focus) String() string {
	switch f {
	case FocusTabs:
		return "tabs"
	case FocusHex:
		return "hex"
	case FocusRed:
		return "red"
	case FocusGreen:
		return "green"
	case FocusBlue:
		return "blue"
	case FocusMode:
		return "mode"
	default:
		return "unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	// MaxPreviewStepsPerTick bounds the catch-up work done on one redraw.
	MaxPreviewStepsPerTick = 256
	StatusMessageDuration  = 3 * time.Second
)

// TUIConfig carries everything the TUI needs from start-up.
type TUIConfig struct {
	DebugMode       bool
	DarkMode        bool
	PreviewInterval time.Duration
	Workspace       workspace.Workspace
}

// Model represents the state of the TUI application.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	Focus          Focus
	DebugMode      bool
	DarkMode       bool

	// Domain state. Picker always mirrors the active workspace profile.
	Workspace workspace.Workspace
	Picker    picker.State
	Preview   *device.Preview

	PreviewInterval time.Duration

	// Inputs
	HexInput      textinput.Model
	ChannelInputs [3]textinput.Model
	RenameInput   textinput.Model

	// UI State & Output
	Keys                 KeyMap
	Help                 help.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	FrameViewport        viewport.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	statusSeq            int

	// Zones tracks clickable regions of the last rendered frame.
	Zones *zone.Manager

	// Logging
	LogChannel <-chan logging.LogEntry
}
