package composite

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]; intermediate blend
// results may leave that range (Subtract can go negative) and are only
// clamped on export.
//
// At the compositor boundary RGBA values are premultiplied: the color
// channels are already scaled by alpha. A pixel with A == 0 carries no
// trustworthy color.
type RGBA struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface, clamping each
// channel. The result is premultiplied (color.RGBA semantics).
func (c RGBA) Color() color.Color {
	return color.RGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA. color.Color.RGBA()
// returns alpha-premultiplied components, so no conversion step is needed.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Premultiply scales the color channels of a straight-alpha color by its
// alpha, yielding the premultiplied form the compositor expects.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the color channels by alpha to recover straight
// color. For A <= 0 it returns transparent black rather than dividing.
func (c RGBA) Unpremultiply() RGBA {
	if c.A <= 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// clamp255 clamps v to [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
