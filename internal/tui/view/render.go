package view

import (
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.TextSecondaryStyle.Render("Bye.") + "\n"
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing...")
	}

	var out string
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		out = renderHelpOverlay(m)
	case model.ModeLogOverlay:
		out = renderLogOverlay(m)
	case model.ModeFrameOverlay:
		out = renderFrameOverlay(m)
	default:
		out = renderMain(m)
	}

	if m.Zones != nil {
		out = m.Zones.Scan(out)
	}
	return out
}

// renderMain lays out the header, tab bar, picker, preview and status bar.
func renderMain(m *model.Model) string {
	header := design.HeaderStyle.Width(m.Width).MaxWidth(m.Width).Render("rgbctl  ·  RGB profile editor")
	sections := []string{
		header,
		renderTabBar(m, m.Width),
		renderPicker(m, m.Width),
		renderPreview(m, m.Width),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Keep the status bar on the last line.
	statusBar := renderStatusBar(m)
	if gap := m.Height - lipgloss.Height(body) - lipgloss.Height(statusBar); gap > 0 {
		body = lipgloss.NewStyle().Height(lipgloss.Height(body) + gap).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func mark(m *model.Model, id, s string) string {
	if m.Zones == nil {
		return s
	}
	return m.Zones.Mark(id, s)
}
