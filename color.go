package polimath

// Color is an RGB color in the working color space. Channel values are
// normalized to [0, 1] and thus free from color depth limits. The zero
// value is black.
type Color struct {
	R, G, B float64
}

// Set sets the RGB components of this color.
func (c *Color) Set(r, g, b float64) {
	c.R = r
	c.G = g
	c.B = b
}

// Lerp returns the component-wise linear interpolation between a and b at
// t, with t in [0, 1].
func (a Color) Lerp(b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// RGBA8 quantizes the color to 8-bit channels with full alpha. Values
// outside [0, 1] are clamped.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return quant8(c.R), quant8(c.G), quant8(c.B), 255
}

func quant8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
