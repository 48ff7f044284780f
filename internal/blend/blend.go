// Package blend implements the per-pixel blend evaluator for layer
// compositing.
//
// All operations work with premultiplied alpha channels in the range [0, 1],
// matching the convention of GPU color attachments. Modes whose formulas are
// ratio-sensitive (Multiply, Overlay, Alpha, Erase) divide out alpha to
// recover straight color before recombining; linear modes (Add, Lighten,
// Darken, Difference, ...) operate on the premultiplied channels directly.
//
// Results are not clamped: Subtract may legitimately produce negative
// channels, and the caller's buffer format decides how to clamp on store.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// Mode identifies a blend algorithm. The numeric values are the selector
// codes used by the compositing pipeline and must not be reordered.
type Mode uint8

const (
	// ModeNormal is the default mode: the current layer is alpha-blended
	// over the parent.
	ModeNormal Mode = iota
	// ModeMultiply darkens by multiplying parent and current color.
	ModeMultiply
	// ModeScreen lightens by inverse-multiplying parent and current.
	ModeScreen
	// ModeLighten selects the componentwise maximum.
	ModeLighten
	// ModeDarken selects the componentwise minimum.
	ModeDarken
	// ModeDifference takes the componentwise absolute difference.
	ModeDifference
	// ModeAdd sums parent and current.
	ModeAdd
	// ModeSubtract subtracts current from parent. The result may go
	// negative; clamping is the caller's concern.
	ModeSubtract
	// ModeInvert replaces parent color with its complement wherever the
	// current layer has coverage. The current color itself is ignored.
	ModeInvert
	// ModeAlpha masks the parent by the current layer's alpha.
	ModeAlpha
	// ModeErase is the complement of ModeAlpha: it erases the parent
	// wherever the current layer is opaque.
	ModeErase
	// ModeOverlay multiplies or screens per channel depending on the
	// parent color.
	ModeOverlay
	// ModeHardLight multiplies or screens per channel depending on the
	// current color.
	ModeHardLight
)

// String returns the name of the blend mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMultiply:
		return "Multiply"
	case ModeScreen:
		return "Screen"
	case ModeLighten:
		return "Lighten"
	case ModeDarken:
		return "Darken"
	case ModeDifference:
		return "Difference"
	case ModeAdd:
		return "Add"
	case ModeSubtract:
		return "Subtract"
	case ModeInvert:
		return "Invert"
	case ModeAlpha:
		return "Alpha"
	case ModeErase:
		return "Erase"
	case ModeOverlay:
		return "Overlay"
	case ModeHardLight:
		return "HardLight"
	default:
		return "Normal"
	}
}

// AlwaysWrites reports whether the mode writes a result even when the
// current layer's alpha is zero. Alpha and Erase are defined for all alpha
// values by construction: their formulas never divide by the current alpha.
func AlwaysWrites(m Mode) bool {
	return m == ModeAlpha || m == ModeErase
}

// Func is the signature of a single blend formula.
//
// Parameters:
//   - cr, cg, cb, ca: current (source) color, premultiplied alpha
//   - pr, pg, pb, pa: parent (destination) color, premultiplied alpha
//
// Returns the blended color. Formulas are total: the degenerate-alpha gate
// lives in Evaluate, not in the individual functions.
type Func func(cr, cg, cb, ca, pr, pg, pb, pa float64) (r, g, b, a float64)

// funcFor returns the blend formula for the given mode.
// Unknown modes fall back to blendNormal.
func funcFor(mode Mode) Func {
	switch mode {
	case ModeNormal:
		return blendNormal
	case ModeMultiply:
		return blendMultiply
	case ModeScreen:
		return blendScreen
	case ModeLighten:
		return blendLighten
	case ModeDarken:
		return blendDarken
	case ModeDifference:
		return blendDifference
	case ModeAdd:
		return blendAdd
	case ModeSubtract:
		return blendSubtract
	case ModeInvert:
		return blendInvert
	case ModeAlpha:
		return blendAlpha
	case ModeErase:
		return blendErase
	case ModeOverlay:
		return blendOverlay
	case ModeHardLight:
		return blendHardLight
	default:
		return blendNormal
	}
}

// Evaluate blends the current color over the parent color using the given
// mode and reports whether the result should be written.
//
// write == false means the destination pixel must be left untouched. This
// happens for every mode except Alpha and Erase when the current alpha is
// zero or negative: with no coverage there is no straight color to recover.
func Evaluate(mode Mode, cr, cg, cb, ca, pr, pg, pb, pa float64) (r, g, b, a float64, write bool) {
	if ca <= 0 && !AlwaysWrites(mode) {
		return 0, 0, 0, 0, false
	}
	r, g, b, a = funcFor(mode)(cr, cg, cb, ca, pr, pg, pb, pa)
	return r, g, b, a, true
}
