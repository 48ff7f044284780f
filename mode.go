package composite

import "github.com/gogpu/composite/internal/blend"

// Mode selects the blend algorithm for a composite operation.
//
// The numeric values are the selector codes of the source pipeline and must
// not be reordered: they are what arrives on the wire. Any out-of-range
// code behaves exactly like ModeNormal; robustness is preferred over
// strictness here, so an unknown selector never produces an error.
type Mode uint8

const (
	// ModeNormal alpha-blends the current layer over the parent (default).
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
	// ModeSubtract subtracts current from parent without clamping.
	ModeSubtract
	// ModeInvert inverts the parent color wherever the current layer has
	// coverage.
	ModeInvert
	// ModeAlpha masks the parent by the current layer's alpha. Always
	// writes, even at zero current alpha.
	ModeAlpha
	// ModeErase erases the parent where the current layer is opaque.
	// Always writes, even at zero current alpha.
	ModeErase
	// ModeOverlay multiplies or screens per channel depending on the
	// parent color.
	ModeOverlay
	// ModeHardLight multiplies or screens per channel depending on the
	// current color.
	ModeHardLight

	// ModeLayer groups a layer without changing pixel math; it shares
	// selector code 0 with ModeNormal.
	ModeLayer = ModeNormal
)

// String returns the name of the blend mode. Out-of-range modes report as
// "Normal", matching their behavior.
func (m Mode) String() string {
	return m.toBlend().String()
}

// ModeFromSelector converts a raw integer selector code to a Mode.
// Out-of-range codes map to ModeNormal.
func ModeFromSelector(code int) Mode {
	if code < int(ModeNormal) || code > int(ModeHardLight) {
		return ModeNormal
	}
	return Mode(code)
}

// AllModes returns every distinct blend mode in selector order.
// Useful for testing and for UIs that cycle through modes.
func AllModes() []Mode {
	return []Mode{
		ModeNormal,
		ModeMultiply,
		ModeScreen,
		ModeLighten,
		ModeDarken,
		ModeDifference,
		ModeAdd,
		ModeSubtract,
		ModeInvert,
		ModeAlpha,
		ModeErase,
		ModeOverlay,
		ModeHardLight,
	}
}

// toBlend converts the public mode to the internal evaluator's enumeration.
// The selector codes align one-to-one, so the conversion is numeric; the
// evaluator applies the Normal fallback for anything out of range.
func (m Mode) toBlend() blend.Mode {
	return blend.Mode(m)
}
