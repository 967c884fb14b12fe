package device

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMode is returned for a lighting mode the controller does not know.
var ErrUnknownMode = errors.New("unknown lighting mode")

// Mode is a lighting mode. The numeric values are the ones the controller
// firmware expects in the "mode" field of a frame.
type Mode int

const (
	ModeStatic  Mode = 0
	ModeRainbow Mode = 1
	ModeFade    Mode = 2
	ModeStrobe  Mode = 4
)

// Modes lists the supported modes in cycling order.
var Modes = []Mode{ModeStatic, ModeRainbow, ModeFade, ModeStrobe}

var titleCaser = cases.Title(language.English)

// String returns the lowercase name used in configuration files.
func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeRainbow:
		return "rainbow"
	case ModeFade:
		return "fade"
	case ModeStrobe:
		return "strobe"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the display name shown in the TUI.
func (m Mode) Label() string {
	return titleCaser.String(m.String())
}

// Valid reports whether the controller accepts m.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Next returns the mode after m in cycling order; a negative step goes back.
func (m Mode) Next(step int) Mode {
	idx := 0
	for i, known := range Modes {
		if known == m {
			idx = i
			break
		}
	}
	n := len(Modes)
	return Modes[((idx+step)%n+n)%n]
}

// ParseMode accepts a mode name, case-insensitively. An empty string means
// static.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "static":
		return ModeStatic, nil
	case "rainbow":
		return ModeRainbow, nil
	case "fade":
		return ModeFade, nil
	case "strobe":
		return ModeStrobe, nil
	default:
		return ModeStatic, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
