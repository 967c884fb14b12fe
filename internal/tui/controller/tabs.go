package controller

import (
	"fmt"

	"rgbctl/internal/tui/model"
	"rgbctl/internal/workspace"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectTab makes ws the current workspace after its active tab changed.
func selectTab(m *model.Model, ws workspace.Workspace) (*model.Model, tea.Cmd) {
	m.Workspace = ws
	m.SyncFromWorkspace()
	name, _ := m.ActiveProfile()
	LogDebug(m, controllerSubsystem, "Selected tab %q", name)
	return m, nil
}

func addTab(m *model.Model) (*model.Model, tea.Cmd) {
	m.Workspace = m.Workspace.Add()
	m.SyncFromWorkspace()
	name, _ := m.ActiveProfile()
	LogInfo(controllerSubsystem, "Added tab %q", name)
	return m, m.SetStatusMessage(fmt.Sprintf("Added %s", name), model.StatusBarSuccess, model.StatusMessageDuration)
}

func removeTab(m *model.Model, i int) (*model.Model, tea.Cmd) {
	if m.Workspace.Len() == 1 {
		return m, m.SetStatusMessage("The last profile cannot be removed", model.StatusBarWarning, model.StatusMessageDuration)
	}
	names := m.Workspace.Names()
	ws, err := m.Workspace.Remove(i)
	if err != nil {
		LogWarn(controllerSubsystem, "Cannot remove tab %d: %v", i, err)
		return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
	}
	m.Workspace = ws
	m.SyncFromWorkspace()
	LogInfo(controllerSubsystem, "Removed tab %q", names[i])
	return m, m.SetStatusMessage(fmt.Sprintf("Removed %s", names[i]), model.StatusBarInfo, model.StatusMessageDuration)
}

func startRename(m *model.Model) (*model.Model, tea.Cmd) {
	name, _ := m.ActiveProfile()
	m.CurrentAppMode = model.ModeRenameInput
	m.RenameInput.SetValue(name)
	m.RenameInput.CursorEnd()
	return m, m.RenameInput.Focus()
}

// handleKeyMsgRenameMode drives the rename prompt for the active tab.
func handleKeyMsgRenameMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		m.RenameInput.Blur()
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(keyMsg, m.Keys.Enter):
		ws, err := m.Workspace.Rename(m.Workspace.ActiveIndex(), m.RenameInput.Value())
		if err != nil {
			LogWarn(controllerSubsystem, "Rename rejected: %v", err)
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError, model.StatusMessageDuration)
		}
		m.Workspace = ws
		m.RenameInput.Blur()
		m.CurrentAppMode = model.ModeMain
		name, _ := m.ActiveProfile()
		return m, m.SetStatusMessage(fmt.Sprintf("Renamed to %s", name), model.StatusBarSuccess, model.StatusMessageDuration)
	}
	var cmd tea.Cmd
	m.RenameInput, cmd = m.RenameInput.Update(keyMsg)
	return m, cmd
}
