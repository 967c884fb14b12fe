package color

import "github.com/lucasb-eyer/go-colorful"

// Gradient is the pair of colours at the two ends of a channel slider.
type Gradient [2]string

// Gradients holds one slider gradient per channel.
type Gradients struct {
	R Gradient
	G Gradient
	B Gradient
}

// For returns the gradient of a channel.
func (g Gradients) For(ch Channel) Gradient {
	switch ch {
	case Green:
		return g.G
	case Blue:
		return g.B
	default:
		return g.R
	}
}

// ChannelGradient returns the colours obtained by setting ch to 0 and to 255
// while the other channels keep their values from c.
func ChannelGradient(c RGB, ch Channel) Gradient {
	return Gradient{c.With(ch, ChannelMin).Hex(), c.With(ch, ChannelMax).Hex()}
}

// DeriveGradients computes all three slider gradients for c.
func DeriveGradients(c RGB) Gradients {
	return Gradients{
		R: ChannelGradient(c, Red),
		G: ChannelGradient(c, Green),
		B: ChannelGradient(c, Blue),
	}
}

// Lerp blends a towards b in RGB space; t is given as step/steps.
func Lerp(a, b RGB, step, steps int) RGB {
	if steps <= 0 {
		return a
	}
	t := float64(step) / float64(steps)
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t))
}

// IsLight reports whether dark text reads better than light text on c.
func (c RGB) IsLight() bool {
	l, _, _ := c.colorful().Lab()
	return l > 0.6
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}
