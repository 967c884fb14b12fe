// Package config provides configuration management for rgbctl.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (compiled in)
//     - Two black, static profiles on pins 9, 10 and 11
//
//  2. User configuration (~/.config/rgbctl/config.yaml)
//
//  3. Project configuration (./.rgbctl/config.yaml)
//
// An explicit path given with --config replaces the user and project layers.
// Files ending in ".toml" are decoded as TOML, everything else as YAML.
//
// # Configuration Structure
//
//	globalSettings:
//	  theme: auto            # auto, dark or light
//	  previewInterval: 50ms  # how often the device preview redraws
//	device:
//	  pins: [9, 10, 11]
//	profiles:
//	  - name: Desk
//	    color: "#ff8800"
//	    mode: fade           # static, rainbow, fade or strobe
//	    wait: 20             # milliseconds per animation step
//
// A non-empty profiles list in a later layer replaces the whole list of the
// earlier one; profiles are an ordered tab list, not a keyed map.
//
// Configuration is only ever read. Edits made in the TUI are not written back.
package config
