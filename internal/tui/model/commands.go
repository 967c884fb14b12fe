package model

import (
	"time"

	"rgbctl/internal/color"
	"rgbctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// PreviewTickCmd schedules the next preview redraw.
func PreviewTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PreviewTickMsg(t)
	})
}

// ListenForLogEntriesCmd waits for the next log entry.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ColorChangeCmd emits the color-change event for a channel row.
func ColorChangeCmd(ch color.Channel, value string) tea.Cmd {
	return func() tea.Msg {
		return ColorChangeMsg{Channel: ch, Value: value}
	}
}

// HexSubmittedCmd emits the hex field's committed value.
func HexSubmittedCmd(value string) tea.Cmd {
	return func() tea.Msg {
		return HexSubmittedMsg{Value: value}
	}
}
