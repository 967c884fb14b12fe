package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	SpaceXS = 1 // 4px
	SpaceSM = 2 // 8px

	// Component dimensions
	MinPanelWidth = 20

	// Slider widths in cells
	MinSliderWidth     = 16
	DefaultSliderWidth = 48
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Inherit(BorderStyle).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				Inherit(BorderFocusStyle).
				BorderForeground(ColorBorderFocus)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	// Tab Styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Foreground(ColorTextSecondary)

	TabActiveStyle = TabStyle.
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	TabCloseStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TabAddStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Foreground(ColorPrimary).
			Bold(true)

	// Input Styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(4)

	LabelFocusedStyle = LabelStyle.
				Foreground(ColorPrimary)

	// Overlay Styles
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = TextStyle
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)
