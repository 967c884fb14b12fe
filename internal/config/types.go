package config

import (
	"errors"
	"fmt"
	"time"

	"rgbctl/internal/color"
	"rgbctl/internal/device"
)

// RgbctlConfig is the top-level configuration structure for rgbctl.
type RgbctlConfig struct {
	GlobalSettings GlobalSettings      `yaml:"globalSettings" toml:"globalSettings"`
	Device         DeviceConfig        `yaml:"device" toml:"device"`
	Profiles       []ProfileDefinition `yaml:"profiles,omitempty" toml:"profiles,omitempty"`
	Addressable    AddressableConfig   `yaml:"addressable,omitempty" toml:"addressable,omitempty"`
}

// GlobalSettings holds UI preferences.
type GlobalSettings struct {
	Theme           string        `yaml:"theme,omitempty" toml:"theme,omitempty"`                     // auto, dark or light
	PreviewInterval time.Duration `yaml:"previewInterval,omitempty" toml:"previewInterval,omitempty"` // redraw interval of the device preview
	Debug           bool          `yaml:"debug,omitempty" toml:"debug,omitempty"`
}

// DeviceConfig describes the controller wiring shared by all profiles.
type DeviceConfig struct {
	Pins []int `yaml:"pins,omitempty" toml:"pins,omitempty"` // R, G and B output pins
}

// ProfileDefinition is one tab as written in a config file.
type ProfileDefinition struct {
	Name  string `yaml:"name,omitempty" toml:"name,omitempty"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"` // "#rrggbb"
	Mode  string `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Wait  *int   `yaml:"wait,omitempty" toml:"wait,omitempty"` // milliseconds; unset means the device default
}

// AddressableConfig describes addressable strips. It is only used by
// `rgbctl frame --addressable`.
type AddressableConfig struct {
	Channels []AddrChannelDefinition `yaml:"channels,omitempty" toml:"channels,omitempty"`
}

// AddrChannelDefinition is one addressable strip as written in a config file.
type AddrChannelDefinition struct {
	Pin      int               `yaml:"pin" toml:"pin"`
	Wait     *int              `yaml:"wait,omitempty" toml:"wait,omitempty"`         // milliseconds; unset means the device default
	LedCount int               `yaml:"ledCount,omitempty" toml:"ledCount,omitempty"` // unset means the length of the first strip
	Sequence []CycleDefinition `yaml:"sequence" toml:"sequence"`
}

// CycleDefinition is one frame of a strip's sequence.
type CycleDefinition struct {
	Wait  int      `yaml:"wait" toml:"wait"`
	Strip []string `yaml:"strip" toml:"strip"` // "#rrggbb" per LED
}

// ToAddrConfig converts the section into a device configuration.
func (a AddressableConfig) ToAddrConfig() (device.AddrConfig, error) {
	var out device.AddrConfig
	for i, def := range a.Channels {
		ch, err := def.toChannel()
		if err != nil {
			return device.AddrConfig{}, fmt.Errorf("addressable.channels[%d]: %w", i, err)
		}
		out.Channels = append(out.Channels, ch)
	}
	if err := out.Validate(); err != nil {
		return device.AddrConfig{}, err
	}
	return out, nil
}

func (d AddrChannelDefinition) toChannel() (device.Channel, error) {
	ch := device.Channel{
		Pin:      d.Pin,
		Wait:     device.DefaultWait,
		LedCount: d.LedCount,
	}
	if d.Wait != nil {
		ch.Wait = *d.Wait
	}
	if ch.LedCount == 0 && len(d.Sequence) > 0 {
		ch.LedCount = len(d.Sequence[0].Strip)
	}
	for i, c := range d.Sequence {
		cycle := device.Cycle{Wait: int32(c.Wait), Strip: make([]color.RGB, len(c.Strip))}
		for j, hex := range c.Strip {
			rgb, err := color.ParseHex(hex)
			if err != nil {
				return device.Channel{}, fmt.Errorf("sequence[%d].strip[%d]: %w", i, j, err)
			}
			cycle.Strip[j] = rgb
		}
		ch.Sequence = append(ch.Sequence, cycle)
	}
	return ch, nil
}

// PinTriple returns the configured pins, or the defaults when the list is not
// exactly three long.
func (d DeviceConfig) PinTriple() [3]int {
	if len(d.Pins) != 3 {
		return device.DefaultPins
	}
	return [3]int{d.Pins[0], d.Pins[1], d.Pins[2]}
}

// ToProfile converts a definition into a device profile on the given pins.
func (p ProfileDefinition) ToProfile(pins [3]int) (device.Profile, error) {
	out := device.NewProfile()
	out.Pins = pins

	if p.Color != "" {
		c, err := color.ParseHex(p.Color)
		if err != nil {
			return device.Profile{}, err
		}
		out.Color = c
	}

	mode, err := device.ParseMode(p.Mode)
	if err != nil {
		return device.Profile{}, err
	}
	out.Mode = mode

	if p.Wait != nil {
		out.Wait = *p.Wait
	}
	if err := out.Validate(); err != nil {
		return device.Profile{}, err
	}
	return out, nil
}

// Validate reports every problem in the configuration at once.
func (c RgbctlConfig) Validate() error {
	var errs []error
	if n := len(c.Device.Pins); n != 0 && n != 3 {
		errs = append(errs, fmt.Errorf("device.pins: want 3 pins, got %d", n))
	}
	if c.GlobalSettings.PreviewInterval < 0 {
		errs = append(errs, fmt.Errorf("globalSettings.previewInterval must not be negative"))
	}
	pins := c.Device.PinTriple()
	for i, p := range c.Profiles {
		if _, err := p.ToProfile(pins); err != nil {
			errs = append(errs, fmt.Errorf("profiles[%d] (%s): %w", i, p.Name, err))
		}
	}
	if len(c.Addressable.Channels) > 0 {
		if _, err := c.Addressable.ToAddrConfig(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
