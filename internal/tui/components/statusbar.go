package components

import (
	"strings"

	"rgbctl/internal/tui/design"
	"rgbctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message. An empty message shows the left and
// right texts instead.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - style.GetHorizontalFrameSize()

	content := s.Message
	if content == "" {
		leftWidth := lipgloss.Width(s.LeftText)
		rightWidth := lipgloss.Width(s.RightText)
		if padding := inner - leftWidth - rightWidth; padding > 0 && s.RightText != "" {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = s.LeftText
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		MaxHeight(1).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
