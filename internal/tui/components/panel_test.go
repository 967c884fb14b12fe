package components

import (
	"strings"
	"testing"

	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		title   string
		content string
	}{
		{"zero width", 0, "Picker", "R 10"},
		{"negative width", -10, "Picker", "R 10"},
		{"empty content", 40, "Picker", ""},
		{"very long content", 24, "Picker", strings.Repeat("wide line ", 20)},
		{"multiline", 30, "Preview", "Line 1\nLine 2\nLine 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(tt.title).WithWidth(tt.width).WithContent(tt.content)

			var result string
			assert.NotPanics(t, func() { result = p.Render() })
			assert.NotEmpty(t, result)

			want := tt.width
			if want < design.MinPanelWidth {
				want = design.MinPanelWidth
			}
			for _, line := range strings.Split(result, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), want)
			}
			assert.Contains(t, result, tt.title)
		})
	}
}

func TestPanel_InnerWidth(t *testing.T) {
	p := NewPanel("x").WithWidth(40)
	assert.Equal(t, 40-design.PanelStyle.GetHorizontalFrameSize(), p.InnerWidth())

	p.SetFocused(true)
	assert.Equal(t, 40-design.PanelFocusedStyle.GetHorizontalFrameSize(), p.InnerWidth())
}

func TestStatusBar_Render(t *testing.T) {
	bar := NewStatusBar(60).WithLeftText("Profile 1").WithRightText("h help")
	out := bar.Render()
	assert.Contains(t, out, "Profile 1")
	assert.Contains(t, out, "h help")
	assert.Equal(t, 60, lipgloss.Width(out))

	out = bar.WithMessage("invalid hex color format", model.StatusBarError).Render()
	assert.Contains(t, out, "invalid hex color format")
	assert.NotContains(t, out, "h help")
}
