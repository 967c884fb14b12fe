// Package device models what a profile means to the LED controller: the
// lighting mode, the step interval, the output pins, the wire frame the
// controller accepts, and a preview of the colours it would display.
package device

import (
	"errors"
	"fmt"
	"time"

	"rgbctl/internal/color"
)

// DefaultWait is the controller's default step interval in milliseconds.
const DefaultWait = 5

// DefaultPins are the PWM pins of the reference wiring.
var DefaultPins = [3]int{9, 10, 11}

// Profile is a complete static-strip configuration.
type Profile struct {
	Color color.RGB
	Mode  Mode
	Wait  int
	Pins  [3]int
}

// NewProfile returns a black, static profile on the default pins.
func NewProfile() Profile {
	return Profile{
		Color: color.Black,
		Mode:  ModeStatic,
		Wait:  DefaultWait,
		Pins:  DefaultPins,
	}
}

// Interval returns Wait as a duration.
func (p Profile) Interval() time.Duration {
	return time.Duration(p.Wait) * time.Millisecond
}

// Validate checks the fields the controller would reject.
func (p Profile) Validate() error {
	var errs []error
	if !p.Mode.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownMode, int(p.Mode)))
	}
	if p.Wait < 0 {
		errs = append(errs, fmt.Errorf("wait must not be negative, got %d", p.Wait))
	}
	for i, pin := range p.Pins {
		if pin < 0 || pin > 255 {
			errs = append(errs, fmt.Errorf("pin %d out of range: %d", i, pin))
		}
	}
	return errors.Join(errs...)
}

// WithWait returns p with Wait moved by delta, never below zero.
func (p Profile) WithWait(delta int) Profile {
	p.Wait += delta
	if p.Wait < 0 {
		p.Wait = 0
	}
	return p
}

// MarshalFrame renders the static configuration frame sent to the controller.
func (p Profile) MarshalFrame() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	frame := fmt.Sprintf(`s{"color":[%d,%d,%d],"pins":[%d,%d,%d],"mode":%d,"speed":%d}`,
		p.Color.R(), p.Color.G(), p.Color.B(),
		p.Pins[0], p.Pins[1], p.Pins[2],
		int(p.Mode), p.Wait)
	return []byte(frame), nil
}
