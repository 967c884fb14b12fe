package view

import (
	"fmt"

	"rgbctl/internal/tui/components"
	"rgbctl/internal/tui/model"
)

// renderStatusBar renders the bottom line. The rename prompt takes its place
// while a tab is being renamed.
func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width)
	if m.CurrentAppMode == model.ModeRenameInput {
		return bar.WithLeftText(m.RenameInput.View()).Render()
	}
	left := fmt.Sprintf("%s  ·  %d profiles", m.Focus, m.Workspace.Len())
	return bar.
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithLeftText(left).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		Render()
}
