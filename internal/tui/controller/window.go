package controller

import (
	"rgbctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the overlay viewports to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	return m, nil
}
