// Package blend math helpers.
//
// The premultiply/unpremultiply pair makes the alpha convention explicit at
// each formula boundary: unpremultiply recovers straight color and is only
// meaningful for alpha > 0, premultiply scales straight color back by a
// coverage value.
package blend

import "math"

// lerp linearly interpolates from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// abs returns the absolute value of x.
func abs(x float64) float64 {
	return math.Abs(x)
}

// unpremultiply divides the color channels by alpha to recover straight
// color. For alpha <= 0 it returns zero color instead of dividing: a pixel
// with no coverage carries no trustworthy color.
func unpremultiply(r, g, b, a float64) (float64, float64, float64) {
	if a <= 0 {
		return 0, 0, 0
	}
	return r / a, g / a, b / a
}

// premultiply scales straight color channels by alpha and returns the
// premultiplied color together with that alpha.
func premultiply(r, g, b, a float64) (float64, float64, float64, float64) {
	return r * a, g * a, b * a, a
}
