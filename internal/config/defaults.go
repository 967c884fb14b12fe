package config

import (
	"time"

	"rgbctl/internal/color"
	"rgbctl/internal/tabs"
)

const (
	DefaultTheme           = color.ThemeAuto
	DefaultPreviewInterval = 50 * time.Millisecond
)

// GetDefaultConfig returns the built-in configuration: the two initial
// profiles, black and static.
func GetDefaultConfig() RgbctlConfig {
	return RgbctlConfig{
		GlobalSettings: GlobalSettings{
			Theme:           DefaultTheme,
			PreviewInterval: DefaultPreviewInterval,
		},
		Device: DeviceConfig{
			Pins: []int{9, 10, 11},
		},
		Profiles: []ProfileDefinition{
			{Name: tabs.DefaultName(1), Color: "#000000", Mode: "static"},
			{Name: tabs.DefaultName(2), Color: "#000000", Mode: "static"},
		},
	}
}
