package model

import (
	"time"

	"rgbctl/internal/color"
	"rgbctl/pkg/logging"
)

// ColorChangeMsg is emitted by a channel row when its value is committed. Value
// is the text of the row's numeric field; the picker validates it.
type ColorChangeMsg struct {
	Channel color.Channel
	Value   string
}

// HexSubmittedMsg is emitted when the hex field is committed.
type HexSubmittedMsg struct {
	Value string
}

// PreviewTickMsg drives the device preview animation.
type PreviewTickMsg time.Time

// ClearStatusBarMsg clears the status bar if no newer message replaced it.
type ClearStatusBarMsg struct {
	ID int
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is returned once the logging channel is closed.
type LogChannelClosedMsg struct{}
