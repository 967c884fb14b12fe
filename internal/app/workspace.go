package app

import (
	"fmt"

	"rgbctl/internal/config"
	"rgbctl/internal/device"
	"rgbctl/internal/workspace"
)

// BuildWorkspace turns the configured profiles into the tabs of a workspace.
// New tabs created later use the default profile on the configured pins.
func BuildWorkspace(cfg config.RgbctlConfig) (workspace.Workspace, error) {
	pins := cfg.Device.PinTriple()
	template := device.NewProfile()
	template.Pins = pins

	entries := make([]workspace.Entry, 0, len(cfg.Profiles))
	for i, def := range cfg.Profiles {
		p, err := def.ToProfile(pins)
		if err != nil {
			return workspace.Workspace{}, fmt.Errorf("profiles[%d] (%s): %w", i, def.Name, err)
		}
		entries = append(entries, workspace.Entry{Name: def.Name, Profile: p})
	}
	return workspace.New(template, entries...), nil
}
