// Package picker implements the colour picker widget state.
//
// State is a value type: every operation returns the next State together with
// an error, and a failed operation hands back the receiver unchanged. Callers
// keep whichever State they were given last; nothing is shared.
package picker

import (
	"fmt"

	"rgbctl/internal/color"
)

// State is everything the picker renders: the colour, its hex mirror and the
// slider gradients derived from it.
type State struct {
	Color     color.RGB
	Hex       string
	Gradients color.Gradients
}

// New builds a consistent State for c.
func New(c color.RGB) State {
	return State{
		Color:     c,
		Hex:       c.Hex(),
		Gradients: color.DeriveGradients(c),
	}
}

// FromHex builds a State from a hex string.
func FromHex(s string) (State, error) {
	c, err := color.ParseHex(s)
	if err != nil {
		return State{}, err
	}
	return New(c), nil
}

// OnHexInput applies text typed into the hex field. The stored hex is
// normalised to lowercase.
func (s State) OnHexInput(input string) (State, error) {
	c, err := color.ParseHex(input)
	if err != nil {
		return s, err
	}
	return New(c), nil
}

// OnChannelChange applies a value typed into one channel's numeric field.
func (s State) OnChannelChange(ch color.Channel, input string) (State, error) {
	if !ch.Valid() {
		return s, fmt.Errorf("unknown channel %d", ch)
	}
	v, err := color.ParseChannel(input)
	if err != nil {
		return s, fmt.Errorf("channel %s: %w", ch, err)
	}
	return New(s.Color.With(ch, v)), nil
}

// SetChannel is OnChannelChange for values that are already integers, such as
// the ones carried by a color-change event.
func (s State) SetChannel(ch color.Channel, value int) (State, error) {
	if !ch.Valid() {
		return s, fmt.Errorf("unknown channel %d", ch)
	}
	v, err := color.ChannelFromInt(value)
	if err != nil {
		return s, fmt.Errorf("channel %s: %w", ch, err)
	}
	return New(s.Color.With(ch, v)), nil
}

// Nudge moves one channel by delta, clamping at the ends of the range.
func (s State) Nudge(ch color.Channel, delta int) State {
	if !ch.Valid() {
		return s
	}
	return New(s.Color.With(ch, color.Clamp(int(s.Color.Get(ch))+delta)))
}
