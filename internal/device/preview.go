package device

import (
	"time"

	"rgbctl/internal/color"
)

// Preview steps through the colours the controller would display for a
// profile. It reproduces the firmware's per-mode state so the TUI swatch
// matches the strip.
type Preview struct {
	profile Profile

	rainbow      color.RGB
	rainbowIndex int
	fade         int
	fadeDir      int
	strobeOn     bool
	display      color.RGB
	lastDisplay  time.Time
}

// NewPreview starts a preview of p. Rainbow begins at full red fading to
// green; fade and strobe begin dark.
func NewPreview(p Profile) *Preview {
	pv := &Preview{}
	pv.Reset(p)
	return pv
}

// Reset switches to a new profile and restarts the animation state.
func (pv *Preview) Reset(p Profile) {
	*pv = Preview{
		profile: p,
		rainbow: color.RGB{255, 0, 0},
		fadeDir: 1,
		display: p.Color,
	}
}

// SetProfile updates the profile. The animation continues unless the mode
// changed.
func (pv *Preview) SetProfile(p Profile) {
	if p.Mode != pv.profile.Mode {
		pv.Reset(p)
		return
	}
	pv.profile = p
	if p.Mode == ModeStatic {
		pv.display = p.Color
	}
}

// Profile returns the profile being previewed.
func (pv *Preview) Profile() Profile {
	return pv.profile
}

// Display returns the colour currently shown.
func (pv *Preview) Display() color.RGB {
	return pv.display
}

// Due reports whether a step is due at now and, if so, records now as the time
// of the last step.
func (pv *Preview) Due(now time.Time) bool {
	if now.Before(pv.lastDisplay.Add(pv.profile.Interval())) {
		return false
	}
	pv.lastDisplay = now
	return true
}

// Step advances the animation once and returns the new display colour.
func (pv *Preview) Step() color.RGB {
	switch pv.profile.Mode {
	case ModeRainbow:
		pv.stepRainbow()
	case ModeFade:
		pv.stepFade()
	case ModeStrobe:
		pv.stepStrobe()
	default:
		pv.display = pv.profile.Color
	}
	return pv.display
}

// Advance runs every step that fell due since the last one, at most max of
// them, and returns the resulting display colour. A backlog larger than max
// is dropped.
func (pv *Preview) Advance(now time.Time, max int) color.RGB {
	interval := pv.profile.Interval()
	if interval <= 0 || pv.lastDisplay.IsZero() {
		if pv.Due(now) {
			pv.Step()
		}
		return pv.display
	}
	for i := 0; i < max && !now.Before(pv.lastDisplay.Add(interval)); i++ {
		pv.lastDisplay = pv.lastDisplay.Add(interval)
		pv.Step()
	}
	if now.Sub(pv.lastDisplay) >= interval {
		pv.lastDisplay = now
	}
	return pv.display
}

func (pv *Preview) stepRainbow() {
	next := (pv.rainbowIndex + 1) % 3
	pv.rainbow[pv.rainbowIndex]--
	pv.rainbow[next]++
	if pv.rainbow[pv.rainbowIndex] == 0 {
		pv.rainbowIndex = next
	}
	pv.display = pv.rainbow
}

func (pv *Preview) stepFade() {
	pv.fade += pv.fadeDir
	if pv.fade >= 255 {
		pv.fade = 255
		pv.fadeDir = -1
	} else if pv.fade <= 0 {
		pv.fade = 0
		pv.fadeDir = 1
	}
	pv.display = pv.profile.Color.Scale(pv.fade, 255)
}

func (pv *Preview) stepStrobe() {
	pv.strobeOn = !pv.strobeOn
	if pv.strobeOn {
		pv.display = pv.profile.Color
	} else {
		pv.display = color.Black
	}
}
