package device

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"rgbctl/internal/color"
)

// MaxSequenceSize is the longest sequence the controller can index; it keeps
// the cycle count in a single byte.
const MaxSequenceSize = 255

// ErrNoChannels is returned for an addressable configuration without strips.
var ErrNoChannels = errors.New("no addressable channels")

// AddrConfig drives addressable LED strips, one Channel per data pin.
type AddrConfig struct {
	Channels []Channel
}

// Channel is one addressable strip and the sequence of frames it loops over.
type Channel struct {
	Pin      int
	Wait     int // milliseconds between cycles
	LedCount int
	Sequence []Cycle
}

// Cycle is one frame of a sequence: a colour per LED and how long to hold it.
type Cycle struct {
	Wait  int32
	Strip []color.RGB
}

// SeqSize is the number of cycles in the sequence.
func (ch Channel) SeqSize() int {
	return len(ch.Sequence)
}

// Validate checks the fields the controller would reject or misread.
func (ch Channel) Validate() error {
	var errs []error
	if ch.Pin < 0 || ch.Pin > 255 {
		errs = append(errs, fmt.Errorf("pin out of range: %d", ch.Pin))
	}
	if ch.Wait < 0 {
		errs = append(errs, fmt.Errorf("wait must not be negative, got %d", ch.Wait))
	}
	if ch.LedCount < 1 {
		errs = append(errs, fmt.Errorf("ledCount must be positive, got %d", ch.LedCount))
	}
	if n := ch.SeqSize(); n < 1 || n > MaxSequenceSize {
		errs = append(errs, fmt.Errorf("sequence must hold 1 to %d cycles, got %d", MaxSequenceSize, n))
	}
	for i, c := range ch.Sequence {
		if c.Wait < 0 {
			errs = append(errs, fmt.Errorf("cycle %d: wait must not be negative, got %d", i, c.Wait))
		}
		if len(c.Strip) != ch.LedCount {
			errs = append(errs, fmt.Errorf("cycle %d: strip has %d LEDs, want %d", i, len(c.Strip), ch.LedCount))
		}
	}
	return errors.Join(errs...)
}

// Validate checks every channel.
func (c AddrConfig) Validate() error {
	if len(c.Channels) == 0 {
		return ErrNoChannels
	}
	var errs []error
	for i, ch := range c.Channels {
		if err := ch.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("channel %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Header renders the text part of the frame that announces the channels.
func (c AddrConfig) Header() string {
	parts := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		parts[i] = fmt.Sprintf(`{"pin":%d,"speed":%d,"ledCount":%d,"seqSize":%d}`,
			ch.Pin, ch.Wait, ch.LedCount, ch.SeqSize())
	}
	return "a[" + strings.Join(parts, ",") + "]"
}

// MarshalFrame renders the addressable configuration frame: the header
// followed, channel by channel, by every cycle's LED bytes and its wait as a
// little-endian int32, terminated by a zero byte.
func (c AddrConfig) MarshalFrame() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid addressable config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(c.Header())
	for _, ch := range c.Channels {
		for _, cycle := range ch.Sequence {
			for _, led := range cycle.Strip {
				buf.Write(led[:])
			}
			if err := binary.Write(&buf, binary.LittleEndian, cycle.Wait); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}
