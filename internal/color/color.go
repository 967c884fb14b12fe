package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned when a string is not a "#rrggbb" colour.
	ErrInvalidFormat = errors.New("invalid hex color format")
	// ErrOutOfRange is returned when a channel value is not an integer in [0,255].
	ErrOutOfRange = errors.New("channel value out of range")
)

const (
	ChannelMin = 0
	ChannelMax = 255
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Channel identifies one of the three colour components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the channels in display order.
var Channels = []Channel{Red, Green, Blue}

// String returns the single-letter label used by the picker.
func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether c names one of the three channels.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// RGB is a colour as three 8-bit channel intensities.
type RGB [3]uint8

// Black is the zero colour.
var Black = RGB{}

// R returns the red channel.
func (c RGB) R() uint8 { return c[Red] }

// G returns the green channel.
func (c RGB) G() uint8 { return c[Green] }

// B returns the blue channel.
func (c RGB) B() uint8 { return c[Blue] }

// Get returns the value of a channel.
func (c RGB) Get(ch Channel) uint8 {
	return c[ch]
}

// With returns a copy of c with one channel replaced.
func (c RGB) With(ch Channel, v uint8) RGB {
	c[ch] = v
	return c
}

// Hex formats the colour as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return ToHex(c)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[Red], c[Green], c[Blue])
}

// ToHex formats an RGB triple as "#rrggbb", each channel zero-padded to two
// lowercase hex digits.
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c[Red], c[Green], c[Blue])
}

// ParseHex parses a "#rrggbb" string. Upper and lower case digits are both
// accepted. Anything else, including a missing '#', yields ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	if !hexColorRegex.MatchString(s) {
		return RGB{}, fmt.Errorf("%w: %q must match #RRGGBB", ErrInvalidFormat, s)
	}
	var c RGB
	for i := range c {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// ChannelFromInt validates an integer channel value.
func ChannelFromInt(v int) (uint8, error) {
	if v < ChannelMin || v > ChannelMax {
		return 0, fmt.Errorf("%w: %d not in [%d,%d]", ErrOutOfRange, v, ChannelMin, ChannelMax)
	}
	return uint8(v), nil
}

// ParseChannel coerces a decimal string, as typed into a channel field, to a
// channel value. Surrounding whitespace is ignored.
func ParseChannel(s string) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrOutOfRange, s)
	}
	return ChannelFromInt(v)
}

// Clamp forces v into [0,255]. Only used for relative adjustments such as
// arrow-key nudges; typed input is validated instead.
func Clamp(v int) uint8 {
	switch {
	case v < ChannelMin:
		return ChannelMin
	case v > ChannelMax:
		return ChannelMax
	default:
		return uint8(v)
	}
}

// Scale multiplies every channel by num/den, rounding down.
func (c RGB) Scale(num, den int) RGB {
	if den <= 0 {
		return Black
	}
	var out RGB
	for i, v := range c {
		out[i] = Clamp(int(v) * num / den)
	}
	return out
}
