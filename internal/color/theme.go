package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// hasDarkBackground is swapped out in tests; querying a real terminal from a
// test binary hangs on some CI runners.
var hasDarkBackground = termenv.HasDarkBackground

// DetectDarkBackground resolves a configured theme name to dark or light.
// Unknown names behave like "auto".
func DetectDarkBackground(theme string) bool {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return hasDarkBackground()
	}
}

// Initialize tells lipgloss which adaptive colour variant to render.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
