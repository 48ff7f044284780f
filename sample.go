package composite

import "math"

// FilterMode defines how a pixmap is sampled at a normalized coordinate.
//
// The zero value is FilterBilinear so that a zero CompositeOp samples the
// way the source pipeline's default sampler does.
type FilterMode uint8

const (
	// FilterBilinear interpolates linearly between the 4 neighboring
	// pixels (default).
	FilterBilinear FilterMode = iota

	// FilterNearest selects the closest pixel (point sampling).
	FilterNearest
)

// String returns a string representation of the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterBilinear:
		return "Bilinear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Sample samples the pixmap at normalized coordinates (u, v) using the
// given filter. u and v are in [0, 1] with (0, 0) the top-left corner and
// (1, 1) the bottom-right. Out-of-range coordinates clamp to the edge.
func (p *Pixmap) Sample(u, v float64, filter FilterMode) RGBA {
	switch filter {
	case FilterNearest:
		return p.SampleNearest(u, v)
	default:
		return p.SampleBilinear(u, v)
	}
}

// SampleNearest performs point sampling at normalized coordinates (u, v).
func (p *Pixmap) SampleNearest(u, v float64) RGBA {
	x := int(math.Floor(u * float64(p.width)))
	y := int(math.Floor(v * float64(p.height)))

	x = clampInt(x, 0, p.width-1)
	y = clampInt(y, 0, p.height-1)

	return p.GetPixel(x, y)
}

// SampleBilinear performs bilinear interpolation at normalized coordinates
// (u, v), interpolating between the 4 neighboring pixel centers.
func (p *Pixmap) SampleBilinear(u, v float64) RGBA {
	// Continuous pixel coordinates; pixel centers sit at +0.5.
	fx := u*float64(p.width) - 0.5
	fy := v*float64(p.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	x0 = clampInt(x0, 0, p.width-1)
	y0 = clampInt(y0, 0, p.height-1)
	x1 = clampInt(x1, 0, p.width-1)
	y1 = clampInt(y1, 0, p.height-1)

	c00 := p.GetPixel(x0, y0)
	c10 := p.GetPixel(x1, y0)
	c01 := p.GetPixel(x0, y1)
	c11 := p.GetPixel(x1, y1)

	return RGBA{
		R: lerp2D(c00.R, c10.R, c01.R, c11.R, tx, ty),
		G: lerp2D(c00.G, c10.G, c01.G, c11.G, tx, ty),
		B: lerp2D(c00.B, c10.B, c01.B, c11.B, tx, ty),
		A: lerp2D(c00.A, c10.A, c01.A, c11.A, tx, ty),
	}
}

// lerp2D performs bilinear interpolation between 4 values.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

// clampInt clamps an integer value to [minVal, maxVal].
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
