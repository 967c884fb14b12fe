package view

import (
	"fmt"

	"rgbctl/internal/color"
	"rgbctl/internal/tui/components"
	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"
	"rgbctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	valueFieldWidth = 5
	modeLabelWidth  = 7
)

// renderPicker renders the hex field, one row per channel and the mode row.
func renderPicker(m *model.Model, width int) string {
	focused := m.Focus != model.FocusTabs && m.CurrentAppMode == model.ModeMain
	panel := components.NewPanel("Color").WithWidth(width).SetFocused(focused)

	sliderWidth := SliderWidth(panel.InnerWidth())
	rows := []string{renderHexRow(m)}
	for _, ch := range color.Channels {
		rows = append(rows, renderChannelRow(m, ch, sliderWidth))
	}
	rows = append(rows, renderModeRow(m))

	return panel.WithContent(lipgloss.JoinVertical(lipgloss.Left, rows...)).Render()
}

// SliderWidth is the width of the gradient bars for a panel of inner width.
func SliderWidth(inner int) int {
	w := inner - design.LabelStyle.GetWidth() - valueFieldWidth - design.SpaceXS
	if w > design.DefaultSliderWidth {
		return design.DefaultSliderWidth
	}
	if w < design.MinSliderWidth {
		return design.MinSliderWidth
	}
	return w
}

func label(text string, focused bool) string {
	if focused {
		return design.LabelFocusedStyle.Render(text)
	}
	return design.LabelStyle.Render(text)
}

func renderHexRow(m *model.Model) string {
	row := label("Hex", m.Focus == model.FocusHex) + m.HexInput.View()
	return mark(m, HexZoneID, row)
}

func renderChannelRow(m *model.Model, ch color.Channel, sliderWidth int) string {
	focused := m.Focus == model.FocusForChannel(ch)
	field := lipgloss.NewStyle().Width(valueFieldWidth).Render(m.ChannelInputs[ch].View())
	bar := GradientBar(m.Picker.Gradients.For(ch), m.Picker.Color.Get(ch), sliderWidth)
	return label(ch.String(), focused) + field + " " + mark(m, SliderZoneID(ch), bar)
}

func renderModeRow(m *model.Model) string {
	_, p := m.ActiveProfile()
	mode := "◀ " + utils.PadRight(p.Mode.Label(), modeLabelWidth) + " ▶"
	if m.Focus == model.FocusMode {
		mode = design.LabelFocusedStyle.UnsetWidth().Render(mode)
	}
	wait := design.TextSecondaryStyle.Render(fmt.Sprintf("  wait %dms", p.Wait))
	return mark(m, ModeZoneID, label("Mode", m.Focus == model.FocusMode)+mode+wait)
}
