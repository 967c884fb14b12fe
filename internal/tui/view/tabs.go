package view

import (
	"strings"

	"rgbctl/internal/tui/components"
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
	"rgbctl/internal/tui/utils"
)

const (
	tabCloseGlyph   = "×"
	tabAddGlyph     = "+"
	minTabNameWidth = 4
)

// renderTabBar renders one label per profile plus the add button.
func renderTabBar(m *model.Model, width int) string {
	panel := components.NewPanel("Profiles").
		WithWidth(width).
		SetFocused(m.Focus == model.FocusTabs && m.CurrentAppMode != model.ModeRenameInput)

	names := m.Workspace.Names()
	nameWidth := tabNameWidth(panel.InnerWidth(), len(names))

	parts := make([]string, 0, len(names)+1)
	for i, name := range names {
		style := design.TabStyle
		if i == m.Workspace.ActiveIndex() {
			style = design.TabActiveStyle
		}
		label := style.Render(utils.TruncateString(name, nameWidth, "…"))
		closeBtn := design.TabCloseStyle.Render(tabCloseGlyph)
		parts = append(parts, mark(m, TabZoneID(i), label)+mark(m, TabCloseZoneID(i), closeBtn))
	}
	parts = append(parts, mark(m, TabAddZoneID, design.TabAddStyle.Render(tabAddGlyph)))

	return panel.WithContent(strings.Join(parts, " ")).Render()
}

// tabNameWidth shares the bar between n tabs. Each tab costs its name plus
// padding, the close button and a separator; the add button takes 3 cells.
func tabNameWidth(inner, n int) int {
	if n == 0 {
		return inner
	}
	const overhead = 2*design.SpaceXS + 1 + 1
	w := (inner-3)/n - overhead
	if w < minTabNameWidth {
		return minTabNameWidth
	}
	return w
}
