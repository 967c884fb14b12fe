package controller

import (
	"fmt"
	"time"

	"rgbctl/internal/tui/model"
	"rgbctl/internal/tui/view"
	"rgbctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI.
// It receives all Bubble Tea messages, directs them to the handler for their
// type and queues any follow-up commands.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case model.PreviewTickMsg, tea.MouseMsg, model.NewLogEntryMsg:
		// Too frequent to log.
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = handleKeyMsgGlobal(m, msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = handleMouseMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ColorChangeMsg:
		cmds = append(cmds, handleColorChangeMsg(m, msg))

	case model.HexSubmittedMsg:
		cmds = append(cmds, handleHexSubmittedMsg(m, msg))

	case model.PreviewTickMsg:
		m.Preview.Advance(time.Time(msg), model.MaxPreviewStepsPerTick)
		cmds = append(cmds, model.PreviewTickCmd(m.PreviewInterval))

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg.ID)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		m.LogChannel = nil

	default:
		var cmd tea.Cmd
		m, cmd = forwardToFocusedInput(m, msg)
		cmds = append(cmds, cmd)
	}

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// forwardToFocusedInput passes messages nobody else handles (cursor blinks
// and the like) to the text input that currently owns the cursor.
func forwardToFocusedInput(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.CurrentAppMode == model.ModeRenameInput:
		m.RenameInput, cmd = m.RenameInput.Update(msg)
	case m.Focus == model.FocusHex:
		m.HexInput, cmd = m.HexInput.Update(msg)
	default:
		if ch, ok := m.Focus.Channel(); ok {
			m.ChannelInputs[ch], cmd = m.ChannelInputs[ch].Update(msg)
		}
	}
	return m, cmd
}

// handleColorChangeMsg applies a committed channel value to the active profile.
func handleColorChangeMsg(m *model.Model, msg model.ColorChangeMsg) tea.Cmd {
	next, err := m.Picker.OnChannelChange(msg.Channel, msg.Value)
	if err != nil {
		m.ResetChannelInput(int(msg.Channel))
		LogWarn(controllerSubsystem, "Rejected %s value %q: %v", msg.Channel, msg.Value, err)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
	}
	m.ApplyPicker(next)
	LogDebug(m, controllerSubsystem, "%s set to %d, color now %s", msg.Channel, next.Color.Get(msg.Channel), next.Hex)
	return nil
}

// handleHexSubmittedMsg applies a committed hex value to the active profile.
func handleHexSubmittedMsg(m *model.Model, msg model.HexSubmittedMsg) tea.Cmd {
	next, err := m.Picker.OnHexInput(msg.Value)
	if err != nil {
		m.ResetHexInput()
		LogWarn(controllerSubsystem, "Rejected hex value %q: %v", msg.Value, err)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
	}
	m.ApplyPicker(next)
	return m.SetStatusMessage(fmt.Sprintf("Color set to %s", next.Hex), model.StatusBarSuccess, model.StatusMessageDuration)
}

// handleNewLogEntry appends an entry from the logging channel to the activity log.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only show up when the TUI runs in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, view.FormatLogEntry(entry))
	}
	return m
}
