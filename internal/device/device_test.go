package device

import (
	"testing"
	"time"

	"rgbctl/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"static", ModeStatic, false},
		{"", ModeStatic, false},
		{"Rainbow", ModeRainbow, false},
		{" fade ", ModeFade, false},
		{"STROBE", ModeStrobe, false},
		{"disco", ModeStatic, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "strobe", ModeStrobe.String())
	assert.Equal(t, "Rainbow", ModeRainbow.Label())
	assert.Equal(t, "mode(3)", Mode(3).String())
	assert.False(t, Mode(3).Valid())
	assert.True(t, ModeStrobe.Valid())
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, ModeRainbow, ModeStatic.Next(1))
	assert.Equal(t, ModeStatic, ModeStrobe.Next(1))
	assert.Equal(t, ModeStrobe, ModeStatic.Next(-1))
	assert.Equal(t, ModeFade, ModeStrobe.Next(-1))
}

func TestMarshalFrame(t *testing.T) {
	p := NewProfile()
	p.Color = color.RGB{100, 0, 200}

	frame, err := p.MarshalFrame()
	require.NoError(t, err)
	assert.Equal(t, `s{"color":[100,0,200],"pins":[9,10,11],"mode":0,"speed":5}`, string(frame))

	p.Mode = ModeStrobe
	p.Wait = 120
	p.Pins = [3]int{3, 5, 6}
	frame, err = p.MarshalFrame()
	require.NoError(t, err)
	assert.Equal(t, `s{"color":[100,0,200],"pins":[3,5,6],"mode":4,"speed":120}`, string(frame))
}

func TestMarshalFrame_Invalid(t *testing.T) {
	p := NewProfile()
	p.Mode = Mode(3)
	p.Wait = -1
	p.Pins[2] = 300

	_, err := p.MarshalFrame()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), "wait must not be negative")
	assert.Contains(t, err.Error(), "pin 2 out of range")
}

func TestWithWait(t *testing.T) {
	p := NewProfile()
	assert.Equal(t, 15, p.WithWait(10).Wait)
	assert.Equal(t, 0, p.WithWait(-10).Wait)
	assert.Equal(t, 5*time.Millisecond, p.Interval())
}

func TestPreview_Static(t *testing.T) {
	p := NewProfile()
	p.Color = color.RGB{1, 2, 3}
	pv := NewPreview(p)

	assert.Equal(t, p.Color, pv.Display())
	assert.Equal(t, p.Color, pv.Step())

	p.Color = color.RGB{9, 9, 9}
	pv.SetProfile(p)
	assert.Equal(t, p.Color, pv.Display())
}

func TestPreview_Rainbow(t *testing.T) {
	p := NewProfile()
	p.Mode = ModeRainbow
	pv := NewPreview(p)

	assert.Equal(t, color.RGB{254, 1, 0}, pv.Step())
	for i := 1; i < 255; i++ {
		pv.Step()
	}
	assert.Equal(t, color.RGB{0, 255, 0}, pv.Display())
	assert.Equal(t, color.RGB{0, 254, 1}, pv.Step())

	for i := 0; i < 254+255; i++ {
		pv.Step()
	}
	assert.Equal(t, color.RGB{255, 0, 0}, pv.Display(), "rainbow wraps back to red after a full cycle")
}

func TestPreview_Fade(t *testing.T) {
	p := NewProfile()
	p.Mode = ModeFade
	p.Color = color.RGB{255, 255, 255}
	pv := NewPreview(p)

	assert.Equal(t, color.RGB{1, 1, 1}, pv.Step())
	for i := 1; i < 255; i++ {
		pv.Step()
	}
	assert.Equal(t, color.RGB{255, 255, 255}, pv.Display())
	assert.Equal(t, color.RGB{254, 254, 254}, pv.Step())
}

func TestPreview_Strobe(t *testing.T) {
	p := NewProfile()
	p.Mode = ModeStrobe
	p.Color = color.RGB{10, 20, 30}
	pv := NewPreview(p)

	assert.Equal(t, p.Color, pv.Step())
	assert.Equal(t, color.Black, pv.Step())
	assert.Equal(t, p.Color, pv.Step())
}

func TestPreview_ModeChangeResets(t *testing.T) {
	p := NewProfile()
	p.Mode = ModeRainbow
	pv := NewPreview(p)
	pv.Step()
	pv.Step()

	p.Mode = ModeStrobe
	pv.SetProfile(p)
	assert.Equal(t, ModeStrobe, pv.Profile().Mode)
	assert.Equal(t, p.Color, pv.Step())
}

func TestPreview_Due(t *testing.T) {
	pv := NewPreview(NewProfile())
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, pv.Due(t0))
	assert.False(t, pv.Due(t0.Add(time.Millisecond)))
	assert.True(t, pv.Due(t0.Add(5*time.Millisecond)))
}

func TestPreview_Advance(t *testing.T) {
	p := NewProfile()
	p.Mode = ModeRainbow
	pv := NewPreview(p)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, color.RGB{254, 1, 0}, pv.Advance(t0, 100))
	assert.Equal(t, color.RGB{244, 11, 0}, pv.Advance(t0.Add(50*time.Millisecond), 100))

	// A long pause only runs max steps.
	assert.Equal(t, color.RGB{234, 21, 0}, pv.Advance(t0.Add(10*time.Second), 10))
	// The backlog was dropped, so nothing is due a millisecond later.
	assert.Equal(t, color.RGB{234, 21, 0}, pv.Advance(t0.Add(10*time.Second+time.Millisecond), 10))
}
