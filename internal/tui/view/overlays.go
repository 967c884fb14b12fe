package view

import (
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the key bindings in a centred box.
func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	m.Help.ShowAll = true
	body := m.Help.View(m.Keys)
	m.Help.ShowAll = false

	container := design.CenteredOverlayContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, title, body))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	return renderViewportOverlay(m, &m.LogViewport, "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
}

func renderFrameOverlay(m *model.Model) string {
	name, _ := m.ActiveProfile()
	return renderViewportOverlay(m, &m.FrameViewport, "Device frame: "+name+"  (y copy  •  Esc close)")
}

// renderViewportOverlay sizes vp to most of the screen and draws it with a
// title above the status bar.
func renderViewportOverlay(m *model.Model, vp *viewport.Model, title string) string {
	style := design.CenteredOverlayContainerStyle
	titleView := design.TitleStyle.Render(title)

	totalWidth := m.Width * 8 / 10
	totalHeight := m.Height * 7 / 10
	vp.Width = max(totalWidth-style.GetHorizontalFrameSize(), 1)
	vp.Height = max(totalHeight-style.GetVerticalFrameSize()-lipgloss.Height(titleView), 1)

	overlay := style.Render(lipgloss.JoinVertical(lipgloss.Left, titleView, vp.View()))
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m))
}
