package view

import (
	"fmt"

	"rgbctl/internal/tui/components"
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	swatchWidth  = 12
	swatchHeight = 3
)

// renderPreview shows what the strip currently displays for the active profile.
func renderPreview(m *model.Model, width int) string {
	name, p := m.ActiveProfile()
	shown := m.Preview.Display()

	details := lipgloss.JoinVertical(lipgloss.Left,
		design.TitleStyle.Render(name),
		design.TextSecondaryStyle.Render(fmt.Sprintf("showing %s (%s)", shown.Hex(), p.Mode.Label())),
		design.TextSecondaryStyle.Render(fmt.Sprintf("pins %d/%d/%d", p.Pins[0], p.Pins[1], p.Pins[2])),
	)
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		Swatch(shown, swatchWidth, swatchHeight),
		lipgloss.NewStyle().PaddingLeft(design.SpaceSM).Render(details),
	)
	return components.NewPanel("Preview").WithWidth(width).WithContent(content).Render()
}
