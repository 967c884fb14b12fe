package view

import (
	"strings"

	"rgbctl/internal/color"

	"github.com/charmbracelet/lipgloss"
)

const sliderMarker = "┃"

// GradientBar renders a slider of width cells shaded from the gradient's low
// end to its high end, with a marker on the cell matching value.
func GradientBar(g color.Gradient, value uint8, width int) string {
	if width < 1 {
		return ""
	}
	lo, err := color.ParseHex(g[0])
	if err != nil {
		return ""
	}
	hi, err := color.ParseHex(g[1])
	if err != nil {
		return ""
	}

	marker := MarkerCell(value, width)
	var b strings.Builder
	for i := 0; i < width; i++ {
		cell := color.Lerp(lo, hi, i, width-1)
		style := lipgloss.NewStyle().Background(lipgloss.Color(cell.Hex()))
		if i == marker {
			b.WriteString(style.Foreground(contrast(cell)).Bold(true).Render(sliderMarker))
			continue
		}
		b.WriteString(style.Render(" "))
	}
	return b.String()
}

// MarkerCell is the slider column showing value on a bar of width cells.
func MarkerCell(value uint8, width int) int {
	if width <= 1 {
		return 0
	}
	return (int(value)*(width-1) + 127) / 255
}

// Swatch renders a block of the given colour.
func Swatch(c color.RGB, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	row := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// contrast picks black or white text for a background colour.
func contrast(bg color.RGB) lipgloss.Color {
	if bg.IsLight() {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
