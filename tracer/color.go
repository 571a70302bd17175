package tracer

// Color is an RGB color with float64 channels.
//
// Channels are nominally in [0,1] but may exceed 1 while light contributions
// accumulate; Clamp before converting to 8-bit output.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

func NewColor(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul multiplies two colors channel by channel.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

func (c Color) MulScalar(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Clamp limits every channel to [0,1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// RGBA8 converts the clamped color to 8-bit channels with full alpha.
func (c Color) RGBA8() (r, g, b, a uint8) {
	cc := c.Clamp()
	return uint8(cc.R * 255), uint8(cc.G * 255), uint8(cc.B * 255), 0xFF
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
