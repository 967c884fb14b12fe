package controller

import (
	"fmt"
	"strings"

	"rgbctl/internal/color"
	"rgbctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. Overlays and text inputs get the
// first look; everything else is a main view shortcut.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyCtrlC {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeRenameInput:
		return handleKeyMsgRenameMode(m, keyMsg)
	case model.ModeHelpOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyHex):
			return m, copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs")
		}
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	case model.ModeFrameOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ShowFrame), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyHex):
			frame, err := activeFrame(m)
			if err != nil {
				return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
			}
			return m, copyToClipboard(m, frame, "Frame")
		}
		var vpCmd tea.Cmd
		m.FrameViewport, vpCmd = m.FrameViewport.Update(keyMsg)
		return m, vpCmd
	}

	if m.Focus == model.FocusHex || isChannelFocus(m.Focus) {
		return handleKeyMsgInputMode(m, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ShowFrame):
		frame, err := activeFrame(m)
		if err != nil {
			LogWarn(controllerSubsystem, "Cannot build frame: %v", err)
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
		}
		m.FrameViewport.SetContent(frame)
		m.FrameViewport.GotoTop()
		m.CurrentAppMode = model.ModeFrameOverlay
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		color.Initialize(m.DarkMode)
		return m, nil
	case key.Matches(keyMsg, m.Keys.CopyHex):
		return m, copyToClipboard(m, m.Picker.Hex, "Hex "+m.Picker.Hex)
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, m.SetFocus(m.Focus.Next(1))
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, m.SetFocus(m.Focus.Next(-1))
	case key.Matches(keyMsg, m.Keys.AddTab):
		return addTab(m)
	case key.Matches(keyMsg, m.Keys.RemoveTab):
		return removeTab(m, m.Workspace.ActiveIndex())
	case key.Matches(keyMsg, m.Keys.RenameTab):
		return startRename(m)
	}

	switch m.Focus {
	case model.FocusTabs:
		switch {
		case key.Matches(keyMsg, m.Keys.Left):
			return selectTab(m, m.Workspace.Cycle(-1))
		case key.Matches(keyMsg, m.Keys.Right):
			return selectTab(m, m.Workspace.Cycle(1))
		}
	case model.FocusMode:
		_, p := m.ActiveProfile()
		switch {
		case key.Matches(keyMsg, m.Keys.Left):
			p.Mode = p.Mode.Next(-1)
		case key.Matches(keyMsg, m.Keys.Right):
			p.Mode = p.Mode.Next(1)
		case key.Matches(keyMsg, m.Keys.WaitUp):
			p = p.WithWait(1)
		case key.Matches(keyMsg, m.Keys.WaitDown):
			p = p.WithWait(-1)
		default:
			return m, nil
		}
		m.ApplyProfile(p)
		LogDebug(m, controllerSubsystem, "Mode %s, wait %dms", p.Mode, p.Wait)
	}
	return m, nil
}

func isChannelFocus(f model.Focus) bool {
	_, ok := f.Channel()
	return ok
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}

func activeFrame(m *model.Model) (string, error) {
	_, p := m.ActiveProfile()
	frame, err := p.MarshalFrame()
	if err != nil {
		return "", err
	}
	return string(frame), nil
}

func copyToClipboard(m *model.Model, text, what string) tea.Cmd {
	if err := clipboardWriteAll(text); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy %s", strings.ToLower(what))
		return m.SetStatusMessage(fmt.Sprintf("Copy failed: %v", err), model.StatusBarError, model.StatusMessageDuration)
	}
	return m.SetStatusMessage(what+" copied to clipboard", model.StatusBarSuccess, model.StatusMessageDuration)
}
