package components

import (
	"rgbctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with a title line.
type Panel struct {
	Title   string
	Content string
	Width   int
	Focused bool
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithWidth sets the outer width, border included.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerWidth is the number of cells available to content.
func (p *Panel) InnerWidth() int {
	w := p.width() - p.style().GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// Render returns the styled panel. Content lines wider than the panel are
// cut by lipgloss, which keeps embedded styling intact.
func (p *Panel) Render() string {
	style := p.style()

	title := design.TitleStyle
	if p.Focused {
		title = title.Foreground(design.ColorPrimary)
	}

	body := title.Render(p.Title)
	if p.Content != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, p.Content)
	}
	body = lipgloss.NewStyle().MaxWidth(p.InnerWidth()).Render(body)

	return style.
		Width(p.width() - style.GetHorizontalBorderSize()).
		Render(body)
}

func (p *Panel) width() int {
	if p.Width < design.MinPanelWidth {
		return design.MinPanelWidth
	}
	return p.Width
}

func (p *Panel) style() lipgloss.Style {
	if p.Focused {
		return design.PanelFocusedStyle
	}
	return design.PanelStyle
}
